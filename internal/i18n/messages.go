package i18n

// Message keys. Values registered for them are fmt-style formats, so a
// literal percent sign is written %%.
const (
	KeyTitle              = "title"
	KeyDescription        = "description"
	KeyFormulaLabel       = "formulaLabel"
	KeyFormula            = "formula"
	KeyExampleLabel       = "exampleLabel"
	KeyExample            = "example"
	KeyBalance            = "balance"
	KeyBalancePlaceholder = "balancePlaceholder"
	KeyRate               = "rate"
	KeyRatePlaceholder    = "ratePlaceholder"
	KeyStartDate          = "startDate"
	KeyEvaluationDate     = "evaluationDate"
	KeyEvaluationHint     = "evaluationHint"
	KeyToday              = "today"
	KeyCalculate          = "calculate"
	KeyTodayAutoCalc      = "todayAutoCalc"
	KeyFillFields         = "fillFields"
	KeyInterestCycle      = "interestCycle"
	KeyDaysAccrued        = "daysAccrued"
	KeyDailyInterest      = "dailyInterest"
	KeyInterestAccrued    = "interestAccrued"
	KeyEstimatedInterest  = "estimatedInterest"
	KeyCycleEnds          = "cycleEnds"
	KeySubjectChange      = "subjectChange"
	KeyClear              = "clear"
	KeySwitchLang         = "switchLang"
	KeySwitchBrand        = "switchBrand"
	KeyFooter             = "footer"
)

const errorKeyPrefix = "error."

// ErrorKey returns the message key for a validation failure reason.
func ErrorKey(reason string) string {
	return errorKeyPrefix + reason
}

var english = map[string]string{
	KeyTitle:              "HELOC Interest Calculator",
	KeyDescription:        "A Home Equity Line of Credit (HELOC) allows homeowners to borrow against the equity in their home. Interest is calculated daily on the borrowed amount and typically paid monthly. Use this calculator to estimate the interest accrued over a period.",
	KeyFormulaLabel:       "Formula:",
	KeyFormula:            "Interest = Balance × (Rate / 100) ÷ 365 × Number of days",
	KeyExampleLabel:       "Example:",
	KeyExample:            "$100,000.00 × (6 ÷ 100) ÷ 365 × 10 days = $164.38 accrued interest",
	KeyBalance:            "Balance ($)",
	KeyBalancePlaceholder: "e.g. 100,000.00",
	KeyRate:               "Interest Rate (%%)",
	KeyRatePlaceholder:    "e.g. 5.45",
	KeyStartDate:          "Start Date",
	KeyEvaluationDate:     "Custom Date",
	KeyEvaluationHint:     "Leave empty to use today's date.",
	KeyToday:              "Today",
	KeyCalculate:          "Calculate",
	KeyTodayAutoCalc:      "Clicking 'Today' will set the custom date to today and automatically calculate the interest.",
	KeyFillFields:         "*Please fill in all fields to calculate accrued interest.*",
	KeyInterestCycle:      "Interest cycle: Monthly",
	KeyDaysAccrued:        "Days accrued:",
	KeyDailyInterest:      "Daily interest:",
	KeyInterestAccrued:    "Interest accrued:",
	KeyEstimatedInterest:  "Estimated full month interest:",
	KeyCycleEnds:          "Current cycle ends:",
	KeySubjectChange:      "Subject to change",
	KeyClear:              "Clear",
	KeySwitchLang:         "Français",
	KeySwitchBrand:        "Switch theme",
	KeyFooter:             "© %s Created by Alain Ekmekdjian",

	ErrorKey("missing_field"):           "Please fill in all fields to calculate accrued interest.",
	ErrorKey("invalid_date"):            "Dates must use the YYYY-MM-DD format.",
	ErrorKey("start_in_future"):         "Start date cannot be after today.",
	ErrorKey("evaluation_before_start"): "Custom date cannot be before the start date.",
	ErrorKey("evaluation_after_cycle"):  "Selected date cannot be after one full calendar month from the start date.",
	ErrorKey("invalid_balance"):         "Balance must be a non-negative number.",
	ErrorKey("invalid_rate"):            "Interest rate must be a non-negative number.",
}

var french = map[string]string{
	KeyTitle:              "Calculateur d'intérêt pour marge de crédit hypothécaire (HELOC)",
	KeyDescription:        "Une marge de crédit hypothécaire (HELOC) permet aux propriétaires d'emprunter sur la valeur nette de leur maison. Les intérêts sont calculés quotidiennement sur le montant emprunté et sont généralement payés mensuellement. Utilisez ce calculateur pour estimer les intérêts courus sur une période donnée.",
	KeyFormulaLabel:       "Formule :",
	KeyFormula:            "Intérêt = Solde × (Taux / 100) ÷ 365 × Nombre de jours",
	KeyExampleLabel:       "Exemple :",
	KeyExample:            "$100,000.00 × (6 ÷ 100) ÷ 365 × 10 jours = $164.38 d'intérêts courus",
	KeyBalance:            "Solde ($)",
	KeyBalancePlaceholder: "ex. 100,000.00",
	KeyRate:               "Taux d'intérêt (%%)",
	KeyRatePlaceholder:    "ex. 5.45",
	KeyStartDate:          "Date de début",
	KeyEvaluationDate:     "Date personnalisée",
	KeyEvaluationHint:     "Laissez vide pour utiliser la date d'aujourd'hui.",
	KeyToday:              "Aujourd'hui",
	KeyCalculate:          "Calculer",
	KeyTodayAutoCalc:      "En cliquant sur 'Aujourd'hui', la date personnalisée sera définie sur aujourd'hui et le calcul des intérêts sera effectué automatiquement.",
	KeyFillFields:         "*Veuillez remplir tous les champs pour calculer les intérêts courus.*",
	KeyInterestCycle:      "Cycle d'intérêt : Mensuel",
	KeyDaysAccrued:        "Jours accumulés :",
	KeyDailyInterest:      "Intérêt quotidien :",
	KeyInterestAccrued:    "Intérêts courus :",
	KeyEstimatedInterest:  "Intérêts mensuels estimés :",
	KeyCycleEnds:          "Fin du cycle en cours :",
	KeySubjectChange:      "Susceptible de changer",
	KeyClear:              "Réinitialiser",
	KeySwitchLang:         "English",
	KeySwitchBrand:        "Changer de thème",
	KeyFooter:             "© %s Créé par Alain Ekmekdjian",

	ErrorKey("missing_field"):           "Veuillez remplir tous les champs pour calculer les intérêts courus.",
	ErrorKey("invalid_date"):            "Les dates doivent utiliser le format AAAA-MM-JJ.",
	ErrorKey("start_in_future"):         "La date de début ne peut pas être ultérieure à aujourd'hui.",
	ErrorKey("evaluation_before_start"): "La date personnalisée ne peut pas être antérieure à la date de début.",
	ErrorKey("evaluation_after_cycle"):  "La date sélectionnée ne peut pas dépasser un mois civil complet à partir de la date de début.",
	ErrorKey("invalid_balance"):         "Le solde doit être un nombre positif ou nul.",
	ErrorKey("invalid_rate"):            "Le taux d'intérêt doit être un nombre positif ou nul.",
}
