package controller

import "net/http"

// OriginAllower reports whether a browser origin may call the API.
type OriginAllower func(origin string) bool

// WithCORS returns a middleware that answers cross-origin requests only for
// origins accepted by allow; a nil allow accepts none. The Origin header is
// echoed back rather than using a wildcard, and OPTIONS preflights are
// short-circuited with 204.
func WithCORS(allow OriginAllower, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && allow != nil && allow(origin) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Request-Id")
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
