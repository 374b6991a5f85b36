package handlers

import (
	"net/http"

	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

type AuthHandler struct {
	uc           *usecase.AuthUseCase
	cookieName   string
	secureCookie bool
}

func NewAuthHandler(uc *usecase.AuthUseCase, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, secureCookie: secureCookie}
}

// Me nunca falha: anônimo recebe {"user": null}.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"user": h.uc.Me(r.Context())})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CreateSession é a ponte com o provedor de login: registra o usuário e
// devolve o token. Também grava o cookie para o fluxo de redirect.
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateSessionInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.uc.CreateSession(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusCreated, out)
}
