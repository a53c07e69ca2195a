package identity

import (
	"net/http"

	"github.com/louisbranch/adminchrome/internal/platform/requestctx"
)

// Middleware stores the verified session user id on the request context.
// Requests without a valid token continue anonymously; a rejected cookie is
// cleared.
func Middleware(verifier *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ReadCookie(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				ClearCookie(w, r)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(requestctx.WithUserID(r.Context(), userID)))
		})
	}
}
