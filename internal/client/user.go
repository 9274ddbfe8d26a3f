package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"stocklink/internal/apierror"
	"stocklink/internal/model"
)

// Permissions fetches the capability flags of the authenticated user.
func (g *Gateway) Permissions(ctx context.Context) (*model.Permission, error) {
	var perm model.Permission
	if err := g.get(ctx, "gateway.Permissions", "permissions", nil, &perm); err != nil {
		return nil, err
	}
	return &perm, nil
}

// SignUp creates an account. The service signals rejection with a JSON null
// body rather than an HTTP error, which surfaces here as a Service error.
func (g *Gateway) SignUp(ctx context.Context, username, password string) error {
	const op = "gateway.SignUp"

	q := url.Values{
		"username": {username},
		"password": {password},
	}
	var body json.RawMessage
	if err := g.get(ctx, op, "signup", q, &body); err != nil {
		return err
	}
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return apierror.New(apierror.Service, op, "the account could not be created")
	}
	return nil
}

// UpdateUser upserts the account record; the serialized user rides as a path
// segment on this endpoint.
func (g *Gateway) UpdateUser(ctx context.Context, u *model.User) error {
	return g.updateByPath(ctx, "gateway.UpdateUser", "update_user", u)
}
