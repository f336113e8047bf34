package server

import (
	"net/http"
	"time"

	"sabi-consults/internal/common/validation"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, validation.LoginSchema, &req); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	token, expiresAt, err := h.deps.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":     token,
		"expiresAt": expiresAt.Format(time.RFC3339),
	})
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Sessions.Logout(r.Context(), sessionToken(r)); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.writeJSON(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

// session lets the admin UI check whether its token is still live.
func (h *handlers) session(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Sessions.Authorize(r.Context(), sessionToken(r)); err != nil {
		h.errors.WriteError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}
