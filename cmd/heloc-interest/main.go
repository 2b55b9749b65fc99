package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/AlainEkh/heloc-calculator/internal/calculator"
	"github.com/AlainEkh/heloc-calculator/internal/config"
	"github.com/AlainEkh/heloc-calculator/internal/i18n"
	"github.com/AlainEkh/heloc-calculator/internal/logging"
	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"github.com/AlainEkh/heloc-calculator/pkg/output"
	"github.com/AlainEkh/heloc-calculator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	balance := flag.String("balance", "", "outstanding balance, e.g. 100,000.00")
	rate := flag.String("rate", "", "annual interest rate in percent, e.g. 5.45")
	startDate := flag.String("start", "", "cycle start date (YYYY-MM-DD)")
	evaluationDate := flag.String("date", "", "evaluation date (YYYY-MM-DD), defaults to today")
	today := flag.Bool("today", false, "evaluate as of today, ignoring -date")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json, yaml")
	lang := flag.String("lang", "", "label language override (en, fr)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load .env\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": %q}\n", *configLocation, err.Error())
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	locale := conf.DefaultLocale()
	if *lang != "" {
		normalized, ok := i18n.Normalize(*lang)
		if !ok {
			logger.Fatal("unsupported language",
				zap.String("op", "main"),
				zap.String("lang", *lang),
			)
		}
		locale = normalized
	}

	loc, err := conf.Location()
	if err != nil {
		logger.Fatal("failed to load time zone",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	calc := calculator.New(logger, calculator.WithLocation(loc))
	in := calculator.Input{
		Balance:        *balance,
		Rate:           *rate,
		StartDate:      *startDate,
		EvaluationDate: *evaluationDate,
	}

	var result calculator.Result
	if *today {
		result, err = calc.CalculateToday(context.Background(), in)
	} else {
		result, err = calc.Calculate(context.Background(), in)
	}
	if err != nil {
		var verr *calculator.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, i18n.New(locale).Error(string(verr.Reason)))
			logger.Fatal("invalid input",
				zap.String("op", "main"),
				zap.String("reason", string(verr.Reason)),
				zap.String("field", verr.Field),
				zap.Error(err),
			)
		}
		logger.Fatal("failed to calculate interest",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := output.Write(os.Stdout, outputFormat, result, locale); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
