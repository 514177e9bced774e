// Package controller contains HTTP middlewares and helper handlers used by the
// loopback check API.
//
// Provided middlewares:
//   - WithCORS: echoes CORS headers for origins the navigation guard allows.
//   - WithLogger: attaches a request-scoped logger and request ID, then writes an access log.
//
// Provided helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof handlers, meant to be mounted
//     behind http.StripPrefix.
package controller
