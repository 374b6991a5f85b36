package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xavierca1/aliar-cursos/internal/entity"
	"github.com/xavierca1/aliar-cursos/pkg/ctxutil"
)

type SessionParser interface {
	Parse(token string) (string, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// Auth resolve a sessão (cookie ou Bearer) para uma identidade no contexto.
// Token inválido, expirado ou de usuário desconhecido segue como anônimo.
// Banco fora na busca do usuário responde 503.
func Auth(sessions SessionParser, users UserFinder, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := sessions.Parse(token)
			if err != nil {
				slog.Debug("sessão inválida, seguindo como anônimo", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if errors.Is(err, entity.ErrNotFound) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				slog.Error("falha ao carregar usuário da sessão",
					slog.String("user_id", userID),
					slog.String("error", err.Error()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"error":"STORAGE_UNAVAILABLE","message":"storage unavailable (users)"}`))
				return
			}

			ctx := ctxutil.WithIdentity(r.Context(), user.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

const internalKeyHeader = "X-Internal-Key"

// RequireInternalKey protege rotas chamadas só por serviços nossos.
// Sem chave configurada a rota fica fechada.
func RequireInternalKey(key string) func(http.Handler) http.Handler {
	key = strings.TrimSpace(key)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimSpace(r.Header.Get(internalKeyHeader))
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"UNAUTHORIZED","message":"invalid internal key"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
