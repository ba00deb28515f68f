package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goldsaver/memberkit/pkg/enrollment"
)

type handlers struct {
	svc    *enrollment.Service
	logger *slog.Logger
}

// FieldRequest is the body of POST /v1/enrollment/fields/{field}.
type FieldRequest struct {
	Value string `json:"value"`
}

// FieldResult reports the outcome of a single-field check. Message is empty
// when the value is acceptable.
type FieldResult struct {
	Field   string `json:"field"`
	Message string `json:"message,omitempty"`
	Valid   bool   `json:"valid"`
}

// CitiesResult lists the localities served by a pincode.
type CitiesResult struct {
	Pincode string   `json:"pincode"`
	Cities  []string `json:"cities"`
}

func (h *handlers) validateStep(w http.ResponseWriter, r *http.Request) {
	step, err := enrollment.ParseStep(r.URL.Query().Get("step"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var raw map[string]any
	if err := bindJSON(r, &raw); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	form, err := enrollment.DecodeForm(raw)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	snapshot, err := form.Snapshot()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.svc.ValidateStep(r.Context(), step, snapshot)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if !res.IsValid {
		writeJSON(w, ErrValidation.Code, Envelope{
			Data: res,
			Error: &ErrorDetail{
				Code:    ErrValidation.Key,
				Message: "enrollment form has invalid fields",
				Details: res.Errors,
			},
		})
		return
	}
	writeData(w, http.StatusOK, res)
}

func (h *handlers) validateField(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")

	var req FieldRequest
	if err := bindJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	msg, err := h.svc.ValidateField(r.Context(), field, req.Value)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, FieldResult{Field: field, Message: msg, Valid: msg == ""})
}

func (h *handlers) cities(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pincode")

	cities, err := h.svc.Cities(r.Context(), pin)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, CitiesResult{Pincode: pin, Cities: cities})
}
