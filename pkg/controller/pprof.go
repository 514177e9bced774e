package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// PprofMux returns a mux serving net/http/pprof relative to its root, so it
// works behind http.StripPrefix("/debug/pprof", ...). Named profiles such as
// "/heap" or "/goroutine" are served by pprof.Handler.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" {
			pprof.Index(w, r)

			return
		}
		pprof.Handler(name).ServeHTTP(w, r)
	})
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
