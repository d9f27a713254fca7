package middleware

import (
	"context"
	"net/http"

	"hospital-portal/internal/guard"
	"hospital-portal/internal/model"
	"hospital-portal/internal/session"
)

type ctxKey string

const UserKey ctxKey = "user"

// RequireRole gates a view by role before any handler code runs. Denials
// redirect rather than 403: unauthenticated goes to login, the wrong role
// goes to its own dashboard.
func RequireRole(sessions *session.Store, required model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := sessions.Current()
			d := guard.Authorize(required, current)
			if !d.Allowed {
				http.Redirect(w, r, d.Redirect, http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), UserKey, current)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the user stored by RequireRole.
func UserFrom(ctx context.Context) *model.User {
	u, _ := ctx.Value(UserKey).(*model.User)
	return u
}
