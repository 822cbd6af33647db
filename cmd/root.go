package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hmezali/iacscan/output"
	"github.com/hmezali/iacscan/scanner"
	"github.com/hmezali/iacscan/types"
)

var (
	iacPath      string
	outputFormat string
	severity     string
	framework    string
	checkovFlags string
	licenseCheck bool
	showSummary  bool
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:     "iacscan",
	Short:   "Analyzes IaC templates for security misconfigurations using Checkov",
	Long:    `iacscan validates Terraform, CloudFormation, and Kubernetes sources by invoking the external Checkov scanner and reformatting its result.`,
	PreRunE: validate,
	Run:     run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&iacPath, "iac-path", "i", "", "Path to the Infrastructure-as-Code (IaC) directory or file")
	rootCmd.Flags().StringVarP(&outputFormat, "output-format", "o", "text", "Output format (json or text)")
	rootCmd.Flags().StringVarP(&severity, "severity", "s", string(types.SeverityMedium), "Minimum severity level to report (LOW, MEDIUM, HIGH, CRITICAL)")
	rootCmd.Flags().StringVarP(&framework, "framework", "f", string(types.FrameworkTerraform), "IaC framework to scan (terraform, cloudformation, kubernetes)")
	rootCmd.Flags().StringVarP(&checkovFlags, "checkov-flags", "c", "", "Additional flags to pass to Checkov, split on whitespace")
	rootCmd.Flags().BoolVarP(&licenseCheck, "license-check", "l", false, "Enable license compatibility checks. Not yet fully implemented")
	rootCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a severity summary table after a successful json scan")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.MarkFlagRequired("iac-path") //nolint:errcheck

	cobra.OnInitialize(setupLogging)
}

// setupLogging runs once before the command body; log configuration is not
// touched anywhere else.
func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// validate rejects bad inputs before any subprocess is started.
func validate(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(iacPath); err != nil {
		return fmt.Errorf("%w: the specified path %q does not exist", types.ErrInvalidPath, iacPath)
	}

	format, err := types.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	outputFormat = string(format)

	if _, err := types.ParseSeverity(severity); err != nil {
		return err
	}
	if _, err := types.ParseFramework(framework); err != nil {
		return err
	}
	return nil
}

// run executes one scan. Every failure past validation is logged and reported
// on stdout; the wrapper itself still exits 0.
func run(cmd *cobra.Command, args []string) {
	log.Infof("starting IaC analysis for path: %s", iacPath)

	req := scanner.Request{
		Path:         iacPath,
		Framework:    types.Framework(framework),
		Severity:     types.Severity(severity),
		Format:       types.Format(outputFormat),
		ExtraFlags:   checkovFlags,
		LicenseCheck: licenseCheck,
	}

	stop := startSpinner()
	res, err := scanner.New().Scan(context.Background(), req)
	stop()

	switch {
	case errors.Is(err, scanner.ErrNotInstalled):
		log.Error("checkov executable not found; ensure Checkov is installed and in your PATH")
		fmt.Println(output.NotInstalledMessage)
	case err != nil:
		log.WithError(err).Error("an unexpected error occurred")
		fmt.Printf("An unexpected error occurred: %v. See logs for details.\n", err)
	default:
		if res.ExitCode == 0 {
			log.Info("checkov analysis completed successfully")
		}
		output.Render(os.Stdout, res, types.Format(outputFormat))

		if showSummary && res.ExitCode == 0 && types.Format(outputFormat) == types.FormatJSON {
			if reports, perr := scanner.ParseReports([]byte(res.Stdout)); perr == nil {
				output.Summary(os.Stderr, reports)
			}
		}
	}

	if licenseCheck {
		output.LicenseWarning(os.Stdout)
	}
}

// startSpinner shows progress on stderr while checkov runs, only when stderr
// is a terminal so captured output stays clean.
func startSpinner() func() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Color("yellow") //nolint:errcheck
	s.Suffix = " Running Checkov scan..."
	s.Start()
	return s.Stop
}
