package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/AlainEkh/heloc-calculator/internal/i18n"
	"github.com/AlainEkh/heloc-calculator/pkg/output"
	"github.com/AlainEkh/heloc-calculator/pkg/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, opts Options) http.Handler {
	t.Helper()
	return NewHandler(zap.NewNop(), testutil.NewCalculator("2025-06-20"), opts)
}

func postForm(t *testing.T, h http.Handler, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func cookieValue(rr *httptest.ResponseRecorder, name string) string {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func TestHandlePageLocaleSelection(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		cookie         string
		expectedLocale string
		expectedText   string
	}{
		{"Default", "/", "", "", "en", "Calculate"},
		{"Query parameter", "/?lang=fr", "", "", "fr", "Calculer"},
		{"Accept-Language", "/", "fr-CA,fr;q=0.9", "", "fr", "Calculer"},
		{"Cookie beats header", "/", "en-US", "fr", "fr", "Calculer"},
		{"Query beats cookie", "/?lang=en", "", "fr", "en", "Calculate"},
		{"Unsupported header", "/", "ja-JP", "", "en", "Calculate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, Options{})
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: localeCookie, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rr.Code)
			}
			if got := rr.Header().Get("Content-Language"); got != tt.expectedLocale {
				t.Errorf("Content-Language = %q, expected %q", got, tt.expectedLocale)
			}
			if got := cookieValue(rr, localeCookie); got != tt.expectedLocale {
				t.Errorf("lang cookie = %q, expected %q", got, tt.expectedLocale)
			}
			if !strings.Contains(rr.Body.String(), tt.expectedText) {
				t.Errorf("expected page to contain %q", tt.expectedText)
			}
		})
	}
}

func TestHandlePageConfiguredDefaultLocale(t *testing.T) {
	h := newTestHandler(t, Options{DefaultLocale: "fr"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rr.Header().Get("Content-Language"); got != "fr" {
		t.Errorf("Content-Language = %q, expected fr", got)
	}
}

func TestHandlePageBrand(t *testing.T) {
	h := newTestHandler(t, Options{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(rr.Body.String(), `class="theme-nesto"`) {
		t.Error("expected default nesto theme")
	}
	if cookieValue(rr, brandCookie) != "nesto" {
		t.Errorf("brand cookie = %q", cookieValue(rr, brandCookie))
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?brand=neutral", nil))
	if !strings.Contains(rr.Body.String(), `class="theme-neutral"`) {
		t.Error("expected neutral theme from query")
	}
}

func TestHandleSubmitCalculate(t *testing.T) {
	h := newTestHandler(t, Options{})
	rr := postForm(t, h, url.Values{
		"action":         {"calculate"},
		"balance":        {"100000"},
		"rate":           {"6"},
		"startDate":      {"2025-06-01"},
		"evaluationDate": {"2025-06-11"},
		"lang":           {"en"},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	for _, want := range []string{
		"$164.38",
		"$493.15",
		"$16.44",
		"2025-06-30",
		`value="100,000.00"`,
		`name="shown" value="1"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestHandleSubmitToday(t *testing.T) {
	h := newTestHandler(t, Options{})
	rr := postForm(t, h, url.Values{
		"action":    {"today"},
		"balance":   {"100000"},
		"rate":      {"6"},
		"startDate": {"2025-06-10"},
	})

	body := rr.Body.String()
	if !strings.Contains(body, `value="2025-06-20"`) {
		t.Error("expected evaluation date to be set to today")
	}
	if !strings.Contains(body, "$164.38") {
		t.Error("expected ten days of interest")
	}
}

func TestHandleSubmitValidationError(t *testing.T) {
	h := newTestHandler(t, Options{})
	rr := postForm(t, h, url.Values{
		"action":    {"calculate"},
		"balance":   {"100000"},
		"rate":      {"6"},
		"startDate": {"2025-07-01"},
		"lang":      {"en"},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Start date cannot be after today.") {
		t.Error("expected inline validation error")
	}
	if strings.Contains(body, `class="result"`) {
		t.Error("expected no result for rejected input")
	}
}

func TestHandleSubmitRejectsMalformedBalance(t *testing.T) {
	h := newTestHandler(t, Options{})
	for _, balance := range []string{"-100000", "1e5", "12abc"} {
		t.Run(balance, func(t *testing.T) {
			rr := postForm(t, h, url.Values{
				"action":         {"calculate"},
				"balance":        {balance},
				"rate":           {"6"},
				"startDate":      {"2025-06-01"},
				"evaluationDate": {"2025-06-11"},
				"lang":           {"en"},
			})

			if rr.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rr.Code)
			}
			body := rr.Body.String()
			if !strings.Contains(body, "Balance must be a non-negative number.") {
				t.Error("expected invalid balance error")
			}
			if strings.Contains(body, `class="result"`) {
				t.Error("expected no result for a malformed balance")
			}
			if !strings.Contains(body, `value="`+balance+`"`) {
				t.Errorf("expected the entered balance %q to be kept", balance)
			}
		})
	}
}

func TestHandleSubmitLocaleKeepsResult(t *testing.T) {
	h := newTestHandler(t, Options{})
	rr := postForm(t, h, url.Values{
		"action":    {"locale"},
		"balance":   {"100,000.00"},
		"rate":      {"6"},
		"startDate": {"2025-06-10"},
		"lang":      {"en"},
		"shown":     {"1"},
	})

	body := rr.Body.String()
	if !strings.Contains(body, "Calculer") {
		t.Error("expected French page after locale toggle")
	}
	if !strings.Contains(body, "$164.38") {
		t.Error("expected displayed result to survive the toggle")
	}
	if cookieValue(rr, localeCookie) != "fr" {
		t.Errorf("lang cookie = %q, expected fr", cookieValue(rr, localeCookie))
	}
}

func TestHandleSubmitBrandToggle(t *testing.T) {
	h := newTestHandler(t, Options{})
	rr := postForm(t, h, url.Values{
		"action":  {"brand"},
		"brand":   {"nesto"},
		"balance": {"2500"},
	})

	body := rr.Body.String()
	if !strings.Contains(body, `class="theme-neutral"`) {
		t.Error("expected neutral theme after brand toggle")
	}
	if !strings.Contains(body, `value="2500"`) {
		t.Error("expected balance to be kept")
	}
	if cookieValue(rr, brandCookie) != "neutral" {
		t.Errorf("brand cookie = %q, expected neutral", cookieValue(rr, brandCookie))
	}
}

func TestHandleSubmitClear(t *testing.T) {
	h := newTestHandler(t, Options{})
	rr := postForm(t, h, url.Values{
		"action":    {"clear"},
		"balance":   {"100000"},
		"rate":      {"6"},
		"startDate": {"2025-06-10"},
		"lang":      {"fr"},
		"brand":     {"neutral"},
		"shown":     {"1"},
	})

	body := rr.Body.String()
	if strings.Contains(body, `value="100000"`) || strings.Contains(body, `class="result"`) {
		t.Error("expected fields and result to be cleared")
	}
	if !strings.Contains(body, "Calculer") || !strings.Contains(body, `class="theme-neutral"`) {
		t.Error("expected locale and brand to survive clear")
	}
}

func TestHandleSubmitUnknownAction(t *testing.T) {
	h := newTestHandler(t, Options{})
	rr := postForm(t, h, url.Values{"action": {"explode"}})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleSubmitBodyTooLarge(t *testing.T) {
	h := newTestHandler(t, Options{MaxBodySize: 16})
	rr := postForm(t, h, url.Values{"balance": {strings.Repeat("1", 64)}})
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", rr.Code)
	}
}

func TestHandleCalculateSuccess(t *testing.T) {
	h := newTestHandler(t, Options{})
	body := `{"balance": 100000, "rate": "6", "startDate": "2025-06-01", "evaluationDate": "2025-06-11"}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var rec output.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if rec.DaysElapsed != 10 || rec.PeriodAccrual != "164.38" || rec.CycleEnd != "2025-06-30" {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestHandleCalculateToday(t *testing.T) {
	h := newTestHandler(t, Options{})
	body := `{"balance": "100,000.00", "rate": 6, "startDate": "2025-06-10", "evaluationDate": "2025-06-12", "today": true}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var rec output.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if rec.EvaluationDate != "2025-06-20" || rec.DaysElapsed != 10 {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestHandleCalculateValidationError(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		reason string
		field  string
		locale string
	}{
		{
			name:   "Missing rate",
			body:   `{"balance": 1000, "startDate": "2025-06-01"}`,
			reason: "missing_field",
			field:  "rate",
			locale: "en",
		},
		{
			name:   "Evaluation after cycle in French",
			body:   `{"balance": 1000, "rate": 5, "startDate": "2025-05-15", "evaluationDate": "2025-06-15", "locale": "fr"}`,
			reason: "evaluation_after_cycle",
			field:  "evaluationDate",
			locale: "fr",
		},
		{
			name:   "Negative balance",
			body:   `{"balance": -5, "rate": 5, "startDate": "2025-06-01"}`,
			reason: "invalid_balance",
			field:  "balance",
			locale: "en",
		},
		{
			name:   "Exponent balance",
			body:   `{"balance": "1e5", "rate": 5, "startDate": "2025-06-01"}`,
			reason: "invalid_balance",
			field:  "balance",
			locale: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, Options{})
			req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rr.Code)
			}
			var resp calculateError
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Reason != tt.reason || resp.Field != tt.field {
				t.Errorf("got reason %q field %q, expected %q %q", resp.Reason, resp.Field, tt.reason, tt.field)
			}
			if expected := i18n.New(tt.locale).Error(tt.reason); resp.Error != expected {
				t.Errorf("error = %q, expected %q", resp.Error, expected)
			}
		})
	}
}

func TestHandleCalculateBadRequest(t *testing.T) {
	h := newTestHandler(t, Options{MaxBodySize: 64})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Malformed JSON", `{"balance":`, http.StatusBadRequest},
		{"Wrong type", `{"balance": true}`, http.StatusBadRequest},
		{"Too large", `{"balance": "` + strings.Repeat("9", 128) + `"}`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rr.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["error"] == "" {
				t.Error("expected error message")
			}
		})
	}
}

func TestHandleVersion(t *testing.T) {
	handler := newTestHandler(t, Options{Version: "  1.2.3  "})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %q", resp["version"])
	}
}

func TestHandleVersionDefaultsToDev(t *testing.T) {
	handler := newTestHandler(t, Options{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	if !bytes.Contains(rr.Body.Bytes(), []byte(`"dev"`)) {
		t.Fatalf("expected dev version, got %s", rr.Body.String())
	}
}

func TestHealthAndMetrics(t *testing.T) {
	withMetrics := newTestHandler(t, Options{Metrics: true})

	rr := httptest.NewRecorder()
	withMetrics.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"ok"`) {
		t.Errorf("unexpected health response %d %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	withMetrics.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "heloc_http_requests_total") {
		t.Errorf("expected prometheus metrics, got %d", rr.Code)
	}

	withoutMetrics := newTestHandler(t, Options{})
	rr = httptest.NewRecorder()
	withoutMetrics.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected /metrics to be absent, got %d", rr.Code)
	}
}

func TestStaticStylesheet(t *testing.T) {
	h := newTestHandler(t, Options{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), ".theme-nesto") {
		t.Error("expected brand themes in stylesheet")
	}
}
