package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTransport(t *testing.T) {
	assert.Nil(t, FromTransport(nil))

	err := FromTransport(stderrors.New("dial tcp: connection refused"))
	assert.True(t, IsCategory(err, ErrNetwork))

	assert.Equal(t, context.Canceled, FromTransport(context.Canceled))

	err = FromTransport(context.DeadlineExceeded)
	assert.True(t, IsCategory(err, ErrNetwork))
	assert.Contains(t, err.Error(), "timeout")
}

func TestFromStatus(t *testing.T) {
	err := FromStatus(http.StatusNotFound, "Interaction not found")
	assert.True(t, IsCategory(err, ErrNotFound))
	assert.Contains(t, err.Error(), "Interaction not found")

	err = FromStatus(http.StatusInternalServerError, "")
	assert.True(t, IsCategory(err, ErrServer))
	assert.Contains(t, err.Error(), "500")

	err = FromStatus(http.StatusBadGateway, "upstream down")
	assert.True(t, IsCategory(err, ErrServer))
	assert.Contains(t, err.Error(), "upstream down")
}

func TestDescribeCoversEveryCategory(t *testing.T) {
	cases := []struct {
		err      error
		contains string
	}{
		{Network("connection refused"), "Could not reach"},
		{Server("status 500"), "rejected"},
		{Malformed("missing field"), "unexpected reply"},
		{NotFound("interaction 9"), "no such record"},
		{InvalidInput("bad date"), "Invalid input"},
		{Busy("submit"), "still running"},
	}

	for _, tc := range cases {
		desc := Describe(tc.err)
		require.NotEmpty(t, desc)
		assert.Contains(t, desc, tc.contains)
	}

	assert.Empty(t, Describe(nil))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "ErrNetwork", Category(Network("x")))
	assert.Equal(t, "ErrServer", Category(Server("x")))
	assert.Equal(t, "ErrMalformedResponse", Category(Malformed("x")))
	assert.Equal(t, "ErrNotFound", Category(NotFound("x")))
	assert.Equal(t, "ErrInvalidInput", Category(InvalidInput("x")))
	assert.Equal(t, "ErrBusy", Category(Busy("x")))
	assert.Equal(t, "Unknown", Category(stderrors.New("x")))
	assert.Empty(t, Category(nil))
}

func TestIsBusy(t *testing.T) {
	assert.True(t, IsBusy(Busy("submit")))
	assert.False(t, IsBusy(Network("x")))
	assert.False(t, IsBusy(nil))
}
