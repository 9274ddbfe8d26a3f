package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := New(Parse, "adapter.Product", `cost price "x" is not a valid decimal`)
	assert.Equal(t, Parse, KindOf(err))

	wrapped := fmt.Errorf("saving product: %w", err)
	assert.Equal(t, Parse, KindOf(wrapped), "KindOf should see through wrapping")

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Transport, "gateway.GetProducts", cause)
	require.ErrorIs(t, err, cause)

	var e *Error
	require.ErrorAs(t, fmt.Errorf("outer: %w", err), &e)
	assert.Equal(t, Transport, e.Kind)
	assert.Equal(t, "gateway.GetProducts", e.Op)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "could not reach the catalog service",
		Message(Wrap(Transport, "gateway.Open", errors.New("dial tcp: timeout"))))
	assert.Equal(t, "the catalog service returned an unexpected response",
		Message(New(Decode, "gateway.GetProduct", "no product with id 7")))
	assert.Equal(t, "not a valid input",
		Message(New(Validation, "app.SaveSupplier", "not a valid input")))
	assert.Equal(t, `invalid input: received "x" is not a MM/DD/YYYY date`,
		Message(New(Parse, "adapter.ReceivedOrder", `received "x" is not a MM/DD/YYYY date`)))
	assert.Equal(t, "plain", Message(errors.New("plain")), "untagged errors pass through")
}

func TestErrorString(t *testing.T) {
	err := &Error{Kind: Service, Op: "gateway.SignUp", Detail: "the account could not be created"}
	assert.Equal(t, "gateway.SignUp: service: the account could not be created", err.Error())
}
