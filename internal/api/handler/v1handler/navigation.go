package v1handler

import (
	"bowshell/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

// CheckNavigation evaluates the "url" query parameter.
// An empty value is a valid (blocked) candidate; a missing one is a bad request.
func (h *Handler) CheckNavigation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("url") {
		NewError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "missing url parameter"))

		return
	}

	candidate := q.Get("url")
	v := h.deps.Navigator.Evaluate(r.Context(), candidate)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("url")
	e.Str(candidate)
	e.FieldStart("verdict")
	e.Str(v.Decision.String())
	e.ObjEnd()
	writeJSON(w, http.StatusOK, &e)
}

// ResolveDeepLink maps the "link" query parameter to an application URL and
// reports whether the webview may load it.
func (h *Handler) ResolveDeepLink(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")

	target, err := h.deps.Links.Resolve(link)
	if err != nil {
		NewError(r.Context(), w, err)

		return
	}
	v := h.deps.Navigator.Evaluate(r.Context(), target)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("link")
	e.Str(link)
	e.FieldStart("target")
	e.Str(target)
	e.FieldStart("verdict")
	e.Str(v.Decision.String())
	e.ObjEnd()
	writeJSON(w, http.StatusOK, &e)
}

// Policy returns the policy the guard enforces.
func (h *Handler) Policy(w http.ResponseWriter, _ *http.Request) {
	p := h.deps.Policy

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("appOrigin")
	e.Str(p.AppOrigin)
	e.FieldStart("internalSchemes")
	writeStrings(&e, p.InternalSchemes)
	e.FieldStart("allowAbout")
	e.Bool(p.AllowAbout)
	e.FieldStart("allowedHosts")
	writeStrings(&e, p.AllowedHosts)
	e.ObjEnd()
	writeJSON(w, http.StatusOK, &e)
}

func writeStrings(e *jx.Encoder, values []string) {
	e.ArrStart()
	for _, v := range values {
		e.Str(v)
	}
	e.ArrEnd()
}
