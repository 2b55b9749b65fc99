// Package constants provides shared constants for the heloc-calculator application.
package constants

// DateLayout is the calendar date format accepted on input and used on output.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// DaysPerYear is the Actual/365 fixed day-count denominator
	DaysPerYear = 365

	// ProjectionDays is the fixed length of the projected monthly accrual
	ProjectionDays = 30

	// CycleMonths is the length of one accrual cycle in calendar months
	CycleMonths = 1

	// DecimalPlaces is the precision for currency rounding
	DecimalPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Locale constants
const (
	// LocaleEnglish is the English locale code
	LocaleEnglish = "en"

	// LocaleFrench is the French locale code
	LocaleFrench = "fr"

	// DefaultLocale is used when nothing else selects a locale
	DefaultLocale = LocaleEnglish
)

// Brand constants
const (
	// BrandNesto is the default brand
	BrandNesto = "nesto"

	// BrandNeutral is the unbranded theme
	BrandNeutral = "neutral"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "HELOC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultServiceName identifies the process in traces
	DefaultServiceName = "heloc-calculator"
)
