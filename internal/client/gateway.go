// Package client implements the session gateway: the single point of contact
// with the remote catalog service. A Gateway owns exactly one authenticated
// identity, fixed at construction — re-authentication is done by building a
// new Gateway and swapping the shared reference, never by mutating headers in
// place, so an in-flight call can never observe mixed credentials.
//
// The wire protocol is GET-only: every operation is a path under the base
// endpoint, request data rides as extra path segments or query parameters,
// and the username/password pair travels as two custom headers on every call
// except the construction handshake, which embeds it in the path.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stocklink/internal/apierror"
	"stocklink/internal/config"
)

// Gateway issues all remote operations under one authenticated identity.
// All fields are set at construction and never mutated afterwards.
type Gateway struct {
	base       *url.URL
	httpClient *http.Client
	username   string
	password   string
}

// Username reports the identity this gateway was opened with.
func (g *Gateway) Username() string { return g.username }

// Open performs the initialization handshake against the service and returns
// a ready Gateway. Construction is all-or-nothing: on any transport or
// non-success response the error is returned and no Gateway escapes.
func Open(ctx context.Context, cfg *config.Config, username, password string) (*Gateway, error) {
	const op = "gateway.Open"

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, apierror.Wrap(apierror.Transport, op, err)
	}

	g := &Gateway{
		base:       base,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout()},
		username:   username,
		password:   password,
	}

	// The handshake carries the credentials in the path, not the headers.
	ref := &url.URL{Path: "initialize/" + username + "/" + password + "/"}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.ResolveReference(ref).String(), nil)
	if err != nil {
		return nil, apierror.Wrap(apierror.Transport, op, err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, apierror.Wrap(apierror.Transport, op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierror.New(apierror.Service, op, fmt.Sprintf("initialize returned status %d", resp.StatusCode))
	}

	log.Debug().Str("username", username).Msg("gateway session opened")
	return g, nil
}

// get issues one authenticated GET and, when out is non-nil, decodes the JSON
// body into it. endpoint is an unescaped path relative to the base URL;
// dynamic segments (including embedded JSON) are percent-encoded here.
func (g *Gateway) get(ctx context.Context, op, endpoint string, query url.Values, out interface{}) error {
	ref := &url.URL{Path: endpoint}
	if query != nil {
		ref.RawQuery = query.Encode()
	}
	u := g.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return apierror.Wrap(apierror.Transport, op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("username", g.username)
	req.Header.Set("password", g.password)
	req.Header.Set("X-Request-Id", requestID)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return apierror.Wrap(apierror.Transport, op, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("op", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("catalog call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apierror.New(apierror.Service, op, fmt.Sprintf("status %d", resp.StatusCode))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierror.Wrap(apierror.Decode, op, err)
	}
	return nil
}

// getID is the common shape of every create endpoint: the response body is
// the bare server-assigned id.
func (g *Gateway) getID(ctx context.Context, op, endpoint string, query url.Values) (int64, error) {
	var id int64
	if err := g.get(ctx, op, endpoint, query, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// updateByPath embeds the serialized entity as a path segment
// (/update_x/{json}); updateByQuery passes it as a named query parameter.
// Both shapes exist on the service and must be kept as-is.
func (g *Gateway) updateByPath(ctx context.Context, op, endpoint string, entity interface{}) error {
	body, err := json.Marshal(entity)
	if err != nil {
		return apierror.Wrap(apierror.Decode, op, err)
	}
	return g.get(ctx, op, endpoint+"/"+string(body), nil, nil)
}

func (g *Gateway) updateByQuery(ctx context.Context, op, endpoint, param string, entity interface{}) error {
	body, err := json.Marshal(entity)
	if err != nil {
		return apierror.Wrap(apierror.Decode, op, err)
	}
	return g.get(ctx, op, endpoint, url.Values{param: {string(body)}}, nil)
}

func pageQuery(limit, offset int64) url.Values {
	return url.Values{
		"limit":  {fmt.Sprint(limit)},
		"offset": {fmt.Sprint(offset)},
	}
}
