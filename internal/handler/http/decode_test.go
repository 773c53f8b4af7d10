package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-api/models"
)

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "object", body: `{"username":"bob"}`},
		{name: "object with whitespace", body: "  \n{\"email\":\"b@x\"}  "},
		{name: "empty object", body: `{}`},
		{name: "empty", body: "", wantErr: true},
		{name: "null", body: "null", wantErr: true},
		{name: "string", body: `"x"`, wantErr: true},
		{name: "broken", body: `{"username":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst models.UserUpdateRequest

			err := decodeObject(httptest.NewRecorder(), req, &dst)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBody)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDecodeObject_UnknownKeysIgnored(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"bob","userName":"x","password":"p"}`))
	var dst models.UserUpdateRequest

	require.NoError(t, decodeObject(httptest.NewRecorder(), req, &dst))
	require.NotNil(t, dst.UserName)
	assert.Equal(t, "bob", *dst.UserName)
	assert.Nil(t, dst.Email)
}

func TestDecodeObject_BodyTooLarge(t *testing.T) {
	body := `{"username":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var dst models.UserUpdateRequest

	err := decodeObject(httptest.NewRecorder(), req, &dst)
	require.ErrorIs(t, err, ErrBodyTooLarge)
	assert.NotErrorIs(t, err, ErrInvalidBody)
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusFromError(err))
}

func TestIDParam(t *testing.T) {
	withID := func(id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := idParam(withID("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = idParam(withID("99999999999999999999"))
	assert.ErrorIs(t, err, ErrInvalidID)
}
