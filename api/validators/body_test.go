package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/multistore-admin/pkg/errors"
)

type vendorBody struct {
	UserID string `json:"userID" validate:"required,max=8"`
}

func TestDecodeJSONBody(t *testing.T) {
	var dest vendorBody
	req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{"userID":"u-1"}`))
	require.NoError(t, DecodeJSONBody(req, &dest))
	assert.Equal(t, "u-1", dest.UserID)
}

func TestDecodeJSONBodyRejects(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"missing field": `{}`,
		"too long":      `{"userID":"0123456789"}`,
		"unknown field": `{"userID":"u","force":true}`,
		"trailing data": `{"userID":"u"}{"userID":"v"}`,
		"malformed":     `{"userID":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var dest vendorBody
			req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(body))
			err := DecodeJSONBody(req, &dest)
			require.Error(t, err)
			assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
		})
	}
}

func TestDecodeJSONBodyFieldDetails(t *testing.T) {
	var dest vendorBody
	req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{}`))
	err := DecodeJSONBody(req, &dest)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, map[string]string{"userID": "is required"}, typed.Details())
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "abc", SanitizeString("  abc \n", 0))
	assert.Equal(t, "ab", SanitizeString("a\x00b", 10))
	assert.Equal(t, "abc", SanitizeString("abcdef", 3))
	// é is two bytes; a cut through it backs off to the rune boundary.
	assert.Equal(t, "caf", SanitizeString("café", 4))
}
