package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/payoff/internal/config"
	"github.com/cleared-dev/payoff/internal/input"
	"github.com/cleared-dev/payoff/internal/plan"
	"github.com/cleared-dev/payoff/internal/render"
	"github.com/cleared-dev/payoff/internal/report"
	"github.com/cleared-dev/payoff/internal/schedule"
)

type calcOptions struct {
	configPath string

	homePrice   string
	downPayment string
	downPercent string
	principal   string
	rate        string
	term        string
	extra       string

	csvPath    string
	seriesPath string
	ledgerPath string
	pdfPath    string
	chart      bool
	table      bool
	noColor    bool
}

func newCalcCommand() *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compare the standard and accelerated payoff of one loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Resolve(opts.configPath)
			if err != nil {
				return err
			}
			slog.Debug("config resolved", "path", path)

			fields := mergeFields(cfg.Loan, cmd, opts)
			return runCalc(cmd.OutOrStdout(), cfg, fields, opts, time.Now())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default ./payoff.yaml, then user config)")
	f.StringVar(&opts.homePrice, "home-price", "", "home purchase price")
	f.StringVar(&opts.downPayment, "down-payment", "", "down payment amount")
	f.StringVar(&opts.downPercent, "down-percent", "", "down payment as a percentage of the price")
	f.StringVar(&opts.principal, "principal", "", "loan amount; skips the down payment derivation")
	f.StringVar(&opts.rate, "rate", "", "annual interest rate in percent")
	f.StringVar(&opts.term, "term", "", "loan term in years")
	f.StringVar(&opts.extra, "extra", "", "extra principal paid each month")
	f.StringVar(&opts.csvPath, "csv", "", "write the yearly comparison to a CSV file")
	f.StringVar(&opts.seriesPath, "series", "", "write the standard yearly series to a CSV file")
	f.StringVar(&opts.ledgerPath, "ledger", "", "write the accelerated monthly ledger to a CSV file")
	f.StringVar(&opts.pdfPath, "pdf", "", "write a PDF report")
	f.BoolVar(&opts.chart, "chart", false, "draw the balance chart")
	f.BoolVar(&opts.table, "table", false, "print the yearly comparison table")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored chart output")

	return cmd
}

// mergeFields overlays explicitly set flags on the configured loan. Setting
// either down payment flag drops the other down payment value from config.
func mergeFields(loan config.LoanConfig, cmd *cobra.Command, opts calcOptions) input.Fields {
	fields := input.Fields{
		HomePrice:           loan.HomePrice,
		DownPaymentAmount:   loan.DownPaymentAmount,
		DownPaymentPercent:  loan.DownPaymentPercent,
		AnnualRatePercent:   loan.AnnualRatePercent,
		TermYears:           loan.TermYears,
		ExtraMonthlyPayment: loan.ExtraMonthlyPayment,
	}

	changed := cmd.Flags().Changed
	if changed("down-payment") || changed("down-percent") {
		fields.DownPaymentAmount = opts.downPayment
		fields.DownPaymentPercent = opts.downPercent
	}
	if changed("home-price") {
		fields.HomePrice = opts.homePrice
	}
	if changed("rate") {
		fields.AnnualRatePercent = opts.rate
	}
	if changed("term") {
		fields.TermYears = opts.term
	}
	if changed("extra") {
		fields.ExtraMonthlyPayment = opts.extra
	}
	return fields
}

func runCalc(out io.Writer, cfg *config.Config, fields input.Fields, opts calcOptions, now time.Time) error {
	params := fields.Params()
	if opts.principal != "" {
		params.Principal = input.Amount(opts.principal)
	}
	slog.Debug("computing",
		"principal", params.Principal,
		"rate", params.AnnualRatePercent,
		"term", params.TermYears,
		"extra", params.ExtraMonthlyPayment)

	res := plan.Compute(params, now)
	if err := render.Summary(out, res); err != nil {
		return err
	}
	if res.Insufficient() {
		fmt.Fprintf(os.Stderr, "warning: nothing to export, inputs are incomplete\n")
		return nil
	}

	if opts.table {
		if err := render.Table(out, res.Comparison.Series); err != nil {
			return err
		}
	}
	if opts.chart {
		color := !opts.noColor && render.ColorEnabled(out)
		if err := render.PlotComparison(out, res.Comparison.Series, cfg.Chart.Width, cfg.Chart.Height, color); err != nil {
			return err
		}
	}

	if opts.csvPath != "" {
		if err := writeFile(opts.csvPath, func(w io.Writer) error {
			return schedule.WriteComparison(w, res.Comparison.Series)
		}); err != nil {
			return err
		}
	}
	if opts.seriesPath != "" {
		if err := writeFile(opts.seriesPath, func(w io.Writer) error {
			return schedule.WriteSeries(w, res.Comparison.Standard.YearlySeries)
		}); err != nil {
			return err
		}
	}
	if opts.ledgerPath != "" {
		if err := writeFile(opts.ledgerPath, func(w io.Writer) error {
			return schedule.WriteLedger(w, res.Comparison.Accelerated.Ledger)
		}); err != nil {
			return err
		}
	}
	if opts.pdfPath != "" {
		data, err := report.Generate(report.Options{
			Title:       cfg.Report.Title,
			Author:      cfg.Report.Author,
			GeneratedAt: now,
		}, res)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.pdfPath, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.pdfPath, err)
		}
		slog.Debug("wrote report", "path", opts.pdfPath, "bytes", len(data))
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	slog.Debug("wrote file", "path", path)
	return nil
}
