// Package requestid assigns a unique ID to every request for log and audit
// correlation.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"verid/pkg/requestcontext"
)

// Header is the response header carrying the request ID.
const Header = "X-Request-ID"

// Middleware generates a UUID for each request, stores it in the context, and
// echoes it in the response headers. A caller-supplied X-Request-ID is
// honored so upstream proxies can correlate.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)

		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
