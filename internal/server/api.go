package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AlainEkh/heloc-calculator/internal/calculator"
	"github.com/AlainEkh/heloc-calculator/internal/i18n"
	"github.com/AlainEkh/heloc-calculator/pkg/output"
	"go.uber.org/zap"
)

// looseString accepts a JSON string or number, so {"balance": 100000} and
// {"balance": "100,000.00"} are both understood.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*s = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		*s = looseString(str)
	default:
		var num json.Number
		if err := json.Unmarshal(trimmed, &num); err != nil {
			return fmt.Errorf("expected string or number, got %s", trimmed)
		}
		*s = looseString(num.String())
	}
	return nil
}

type calculateRequest struct {
	Balance        looseString `json:"balance"`
	Rate           looseString `json:"rate"`
	StartDate      string      `json:"startDate"`
	EvaluationDate string      `json:"evaluationDate"`
	Today          bool        `json:"today"`
	Locale         string      `json:"locale"`
}

type calculateError struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
	Field  string `json:"field,omitempty"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	in := calculator.Input{
		Balance:        strings.TrimSpace(string(req.Balance)),
		Rate:           strings.TrimSpace(string(req.Rate)),
		StartDate:      strings.TrimSpace(req.StartDate),
		EvaluationDate: strings.TrimSpace(req.EvaluationDate),
	}

	var (
		result calculator.Result
		err    error
	)
	if req.Today {
		result, err = h.calc.CalculateToday(r.Context(), in)
	} else {
		result, err = h.calc.Calculate(r.Context(), in)
	}
	if err != nil {
		var verr *calculator.ValidationError
		if !errors.As(err, &verr) {
			h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
			return
		}
		locale := h.resolveLocale(r, req.Locale)
		h.logger.Info("calculation rejected",
			zap.String("op", op),
			zap.String("reason", string(verr.Reason)),
			zap.String("field", verr.Field),
		)
		h.writeJSON(w, http.StatusBadRequest, calculateError{
			Error:  i18n.New(locale).Error(string(verr.Reason)),
			Reason: string(verr.Reason),
			Field:  verr.Field,
		})
		return
	}

	h.writeJSON(w, http.StatusOK, output.NewRecord(result))
}
