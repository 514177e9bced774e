// Package v1handler implements the v1 loopback API the host runtime and the
// web application use to query the navigation guard.
package v1handler

import (
	"bowshell/internal/deeplink"
	"bowshell/internal/shell"
	"bowshell/pkg/logger"
	"bowshell/pkg/navguard"
	"bowshell/pkg/serrors"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the collaborators the handlers delegate to.
type Deps struct {
	Navigator *shell.Navigator
	Links     deeplink.Resolver
	Policy    navguard.Policy
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 router, to be mounted under /v1.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/navigation/check", h.CheckNavigation)
	r.Get("/deeplinks/resolve", h.ResolveDeepLink)
	r.Get("/policy", h.Policy)

	return r
}

func writeJSON(w http.ResponseWriter, status int, enc *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(enc.Bytes())
}

// NewError logs err and writes it with the status matching its kind.
func NewError(ctx context.Context, w http.ResponseWriter, err error) {
	status := serrors.HTTPStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		msg = http.StatusText(status)
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()
	writeJSON(w, status, &e)
}
