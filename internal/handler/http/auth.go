package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// login issues a token for the user owning the given userName and email.
// The password, if sent, is ignored.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeError(w, r, ErrMissingJSON, "")
		return
	}

	var req models.LoginRequest
	if r.Body == nil {
		writeError(w, r, ErrMissingJSON, "")
		return
	}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingJSON, err), "")
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.UserName, req.Email)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	log.Debug().Int64("id", user.ID).Str("user_name", user.UserName).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.LoginResponse{JWT: token.SignedString}, http.StatusOK)
}
