package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/rpgo/acos-calculator/internal/calculation"
	"github.com/rpgo/acos-calculator/internal/domain"
	"github.com/rpgo/acos-calculator/internal/form"
	"github.com/rpgo/acos-calculator/internal/output"
)

const maxBodyBytes = 1 << 16

// CalculateRequest is the body of POST /api/acos
type CalculateRequest struct {
	Spend   string `json:"spend"`
	Divisor string `json:"divisor"`
	Variant string `json:"variant,omitempty"`
}

// VariantResponse describes one variant in GET /api/variants
type VariantResponse struct {
	domain.Variant
	FieldOrder []string `json:"field_order"`
	Default    bool     `json:"default"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	v := s.variant(r.URL.Query().Get("variant"))
	s.renderForm(w, r, v, form.New())
}

// handleSubmit replays the posted field values as input events followed by
// the requested action. An empty action is an Enter-key submit.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	events := []form.Event{
		form.Input(domain.FieldSpend, r.PostFormValue("spend")),
		form.Input(domain.FieldDivisor, r.PostFormValue("divisor")),
	}
	calculate := false
	switch action := r.PostFormValue("action"); action {
	case "", "calculate":
		calculate = true
		events = append(events, form.Event{Kind: form.EventCalculate})
	case "clear":
		events = append(events, form.Event{Kind: form.EventClear})
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	f := form.Replay(events...)
	if calculate {
		s.metrics.ObserveCalculation(f.Evaluate())
	}
	s.logger.Debug("Form submitted",
		"state", f.State().String(),
		"request_id", GetRequestID(r.Context()),
	)
	s.renderForm(w, r, s.variant(r.PostFormValue("variant")), f)
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, v domain.Variant, f *form.Form) {
	page, err := output.NewPage(v, f.View())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := output.RenderPage(&buf, page); err != nil {
		s.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("Failed to render page", "error", err, "request_id", GetRequestID(r.Context()))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// handleCalculate answers 200 for ineligible input too: eligible=false, acos=null
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report := &domain.Report{
		Variant:     s.variant(req.Variant),
		Spend:       req.Spend,
		Divisor:     req.Divisor,
		Calculation: calculation.Evaluate(req.Spend, req.Divisor),
	}
	s.metrics.ObserveCalculation(report.Calculation)
	writeJSON(w, output.NewResponse(report))
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.variants))
	for name := range s.variants {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := make([]VariantResponse, 0, len(names))
	for _, name := range names {
		v := s.variants[name]
		resp = append(resp, VariantResponse{
			Variant:    v,
			FieldOrder: v.OrderNames(),
			Default:    name == s.cfg.DefaultVariant,
		})
	}
	writeJSON(w, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
