package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlainEkh/heloc-calculator/internal/brand"
	"github.com/AlainEkh/heloc-calculator/internal/calculator"
	"github.com/AlainEkh/heloc-calculator/internal/form"
	"github.com/AlainEkh/heloc-calculator/internal/i18n"
	"github.com/AlainEkh/heloc-calculator/internal/metrics"
	"github.com/AlainEkh/heloc-calculator/pkg/datetime"
	"github.com/AlainEkh/heloc-calculator/pkg/format"
	"go.uber.org/zap"
)

// Cookie names remembering the visitor's choices.
const (
	localeCookie = "lang"
	brandCookie  = "brand"
)

// resultView is a result formatted for display.
type resultView struct {
	DaysElapsed           int
	DailyAccrual          string
	PeriodAccrual         string
	ProjectedMonthAccrual string
	CycleEnd              string
}

type pageData struct {
	translator *i18n.Translator

	Locale  string
	Brand   brand.Brand
	Form    form.Form
	Result  *resultView
	Error   string
	Year    string
	Version string

	Complete bool
	StartMax string
	EvalMin  string
	EvalMax  string
}

// Msg renders a message in the page locale.
func (p pageData) Msg(key string) string {
	return p.translator.T(key)
}

// Footer renders the footer line with the current year.
func (p pageData) Footer() string {
	return p.translator.T(i18n.KeyFooter, p.Year)
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	f := form.Form{
		Locale: h.resolveLocale(r, r.URL.Query().Get(localeCookie)),
		Brand:  h.resolveBrand(r, r.URL.Query().Get(brandCookie)).Name,
	}
	h.render(w, r, f)
}

func (h *handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := r.ParseForm(); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	f := form.FromValues(r.PostForm)
	f.Locale = h.resolveLocale(r, f.Locale)
	f.Brand = h.resolveBrand(r, f.Brand).Name

	action := form.Action(r.PostForm.Get(form.FieldAction))
	if err := f.Apply(r.Context(), h.calc, h.brands, action); err != nil {
		h.logger.Warn("rejected form submission",
			zap.String("op", "server.handleSubmit"),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if action == "" {
		action = form.ActionCalculate
	}
	metrics.FormSubmissions.WithLabelValues(string(action), f.Locale, f.Brand).Inc()

	h.render(w, r, f)
}

// resolveLocale picks the page locale from an explicit choice, the cookie,
// Accept-Language and finally the configured default.
func (h *handler) resolveLocale(r *http.Request, explicit string) string {
	if locale, ok := i18n.Normalize(explicit); ok {
		return locale
	}
	if c, err := r.Cookie(localeCookie); err == nil {
		if locale, ok := i18n.Normalize(c.Value); ok {
			return locale
		}
	}
	if locale, ok := i18n.Match(r.Header.Get("Accept-Language")); ok {
		return locale
	}
	return h.defaultLocale
}

func (h *handler) resolveBrand(r *http.Request, explicit string) brand.Brand {
	if b, ok := h.brands.Lookup(explicit); ok {
		return b
	}
	if c, err := r.Cookie(brandCookie); err == nil {
		if b, ok := h.brands.Lookup(c.Value); ok {
			return b
		}
	}
	return h.brands.Default()
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, f form.Form) {
	today := h.calc.Today()
	t := i18n.New(f.Locale)

	data := pageData{
		translator: t,
		Locale:     t.Locale(),
		Brand:      h.brands.Resolve(f.Brand),
		Form:       f,
		Year:       strconv.Itoa(today.Year),
		Version:    h.version,
		Complete:   f.Complete(),
		StartMax:   today.String(),
		EvalMin:    f.StartDate,
	}
	if start, err := datetime.ParseDate(f.StartDate); err == nil {
		data.EvalMax = datetime.CycleEnd(start).String()
	}
	if verr := f.ValidationError(); verr != nil {
		data.Error = t.Error(string(verr.Reason))
	}
	if f.Result != nil {
		data.Result = newResultView(*f.Result)
	}

	var buf bytes.Buffer
	if err := h.page.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", "server.render"),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: localeCookie, Value: data.Locale, Path: "/", SameSite: http.SameSiteLaxMode})
	http.SetCookie(w, &http.Cookie{Name: brandCookie, Value: data.Brand.Name, Path: "/", SameSite: http.SameSiteLaxMode})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", data.Locale)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page",
			zap.String("op", "server.render"),
			zap.Error(err),
		)
	}
}

func newResultView(result calculator.Result) *resultView {
	return &resultView{
		DaysElapsed:           result.DaysElapsed,
		DailyAccrual:          format.Currency(result.DailyAccrual),
		PeriodAccrual:         format.Currency(result.PeriodAccrual),
		ProjectedMonthAccrual: format.Currency(result.ProjectedMonthAccrual),
		CycleEnd:              result.CycleEnd.String(),
	}
}
