package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/de-tools/insure-atlas/pkg/services/session"
	"github.com/rs/zerolog"
)

// SessionGate rejects requests with 401 while the session is signed out.
// It subscribes to the session once and reads the cached flag per request.
func SessionGate(state session.State) func(http.Handler) http.Handler {
	var authenticated atomic.Bool
	authenticated.Store(state.Authenticated())
	state.Subscribe(func(v bool) {
		authenticated.Store(v)
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !authenticated.Load() {
				zerolog.Ctx(req.Context()).Debug().Msg("rejected unauthenticated request")
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
