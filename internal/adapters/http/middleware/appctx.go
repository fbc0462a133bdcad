package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/campus-superapp/internal/app/context"
)

// AppContext gives each request a fresh appctx.RequestContext. Services use
// it to memoize account and project lookups and to queue the actions a
// mutation commits. It runs after the id middleware so the embedded context
// already carries the request and user ids.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appctx.WithRequestContext(r.Context(), appctx.New(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
