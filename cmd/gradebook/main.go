// Package main provides the CLI entrypoint for gradebook.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kunalsingh-dev/gradebook/internal/config"
	"github.com/kunalsingh-dev/gradebook/internal/export"
	"github.com/kunalsingh-dev/gradebook/internal/grading"
	"github.com/kunalsingh-dev/gradebook/internal/model"
	"github.com/kunalsingh-dev/gradebook/internal/report"
	"github.com/kunalsingh-dev/gradebook/internal/session"
	"github.com/kunalsingh-dev/gradebook/internal/source"
	"github.com/kunalsingh-dev/gradebook/internal/stats"
	"github.com/kunalsingh-dev/gradebook/internal/tui"
)

const (
	defaultExportFile = export.DefaultFilename
	defaultPlaces     = report.DefaultPlaces
)

var (
	sessionExportFile string
	sessionPlaces     int

	analyzeFile   string
	analyzeExport string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gradebook",
		Short:         "Interactive student marks analyzer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSessionCmd,
	}

	rootCmd.Flags().StringVar(&sessionExportFile, "export-file", defaultExportFile, "default export filename")
	rootCmd.Flags().IntVar(&sessionPlaces, "places", defaultPlaces, "decimal places for statistics")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive session requires a terminal (use 'gradebook analyze' for files)")
	}
	machine := session.New(opts)
	program := tea.NewProgram(tui.NewModel(machine))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run session: %w", err)
	}
	return nil
}

func resolveOptions(cmd *cobra.Command) (model.Options, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "export-file", &sessionExportFile, fileCfg.Report.ExportFile)
	applyIntConfig(cmd, "places", &sessionPlaces, fileCfg.Report.Places)

	opts := model.Options{
		ExportFile: sessionExportFile,
		Places:     sessionPlaces,
	}
	if err := validateOptions(opts); err != nil {
		return model.Options{}, err
	}
	return opts, nil
}

func validateOptions(opts model.Options) error {
	if opts.ExportFile == "" {
		return fmt.Errorf("--export-file must not be empty")
	}
	if opts.Places <= 0 {
		return fmt.Errorf("--places must be > 0")
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a marks CSV file without the interactive session",
		Args:  cobra.NoArgs,
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().StringVar(&analyzeFile, "file", "", "CSV file with Name and Marks columns")
	cmd.Flags().StringVar(&analyzeExport, "export", "", "write the results table to this CSV file")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	if analyzeFile == "" {
		return fmt.Errorf("--file is required")
	}
	places := defaultPlaces
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if fileCfg.Report.Places != nil && *fileCfg.Report.Places > 0 {
		places = *fileCfg.Report.Places
	}

	scores, err := source.ReadCSV(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to load marks: %w", err)
	}
	if scores.Len() == 0 {
		return fmt.Errorf("no data available to analyze")
	}

	w := cmd.OutOrStdout()
	if err := report.RenderStats(w, stats.Summarize(scores.Scores()), places); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := report.RenderDistribution(w, grading.Distribution(scores)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	passed, failed := grading.PassFail(scores)
	if err := report.RenderPassFail(w, passed, failed); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := report.RenderResults(w, scores); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if analyzeExport != "" {
		written, err := export.WriteCSV(analyzeExport, scores)
		if err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		if _, err := fmt.Fprintf(w, "Results exported successfully to %s.\n", written); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# gradebook configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# export-file = %q   # Default export filename
# places = %d                          # Decimal places for statistics
`,
		defaultExportFile,
		defaultPlaces,
	)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
