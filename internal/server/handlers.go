package server

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/goliatone/go-palette/internal/metrics"
	"github.com/goliatone/go-palette/pkg/branding"
	"github.com/goliatone/go-palette/pkg/orchestrator"
	"github.com/goliatone/go-palette/pkg/render"
)

// handleForm renders the form; query parameters prefill fields by name.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.request(r.URL.Query(), false), http.StatusOK)
}

// handleSubmit is the no-JS path. action=generate runs the generate action
// server-side; any other action re-renders the submitted values.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	generate := r.PostForm.Get(render.ActionFieldName) == render.ActionGenerate
	s.render(w, r, s.request(r.PostForm, generate), http.StatusOK)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, req orchestrator.Request, status int) {
	resp, err := s.orch.Generate(r.Context(), req)
	if err != nil {
		s.logger.Error("render form failed", zap.Error(err))
		http.Error(w, "failed to render form", http.StatusInternalServerError)
		return
	}

	if resp.Outcome != nil {
		if s.metricsEnabled {
			metrics.ObserveGeneration(resp.Outcome.OK())
		}
		if !resp.Outcome.OK() {
			status = http.StatusUnprocessableEntity
		}
	}
	if s.metricsEnabled {
		metrics.ObserveRender(resp.Renderer)
	}

	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(status)
	_, _ = w.Write(resp.Output)
}

// handleThemeCSS returns the tenant stylesheet for the colours in the query.
func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	brand := branding.FromValues(flatten(r.URL.Query()))
	css, err := brand.Stylesheet(s.stylesheets)
	if err != nil {
		s.logger.Error("render stylesheet failed", zap.Error(err))
		http.Error(w, "failed to render stylesheet", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(css))
}

func (s *Server) request(values url.Values, generate bool) orchestrator.Request {
	contract := s.contract
	return orchestrator.Request{
		Contract:     &contract,
		Values:       flatten(values),
		Generate:     generate,
		ThemeName:    s.themeName,
		ThemeVariant: s.themeVariant,
		RenderOptions: render.RenderOptions{
			Action: "/",
		},
	}
}

// flatten keeps the first value of each key.
func flatten(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}
