package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huanfeng/apkscope/internal/config"
	apperrors "github.com/huanfeng/apkscope/internal/errors"
	"github.com/huanfeng/apkscope/internal/i18n"
	"github.com/huanfeng/apkscope/pkg/apk"
	"github.com/huanfeng/apkscope/pkg/models"
	"github.com/huanfeng/apkscope/pkg/report"
	"github.com/huanfeng/apkscope/pkg/security"
	"github.com/huanfeng/apkscope/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	// Persistent
	configPath string
	verbose    bool
	langFlag   string
	logFormat  string

	// Analysis
	outputPath string
	formatFlag string
	noExtract  bool
	exportIcon bool
)

var rootCmd = &cobra.Command{
	Use:   "apkscope <apk-file>",
	Short: "Extract metadata, permissions and a security summary from an APK",
	Long: `apkscope reads an Android package, hashes it, classifies its requested
permissions and writes a JSON or YAML analysis report.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

// Execute runs the CLI and exits non-zero on error
func Execute() {
	if err := i18n.Init(langFromArgs(os.Args[1:])); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	applyCommandLocalization()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperrors.Format(err, verbose))
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: ./apkscope.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pf.StringVar(&langFlag, "lang", "", "Interface language (en, zh)")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text, compact or json")

	f := rootCmd.Flags()
	f.StringVarP(&outputPath, "output", "o", "", "Output file for the analysis report")
	f.StringVarP(&formatFlag, "format", "f", "", "Report format: json or yaml (default: from --output, else json)")
	f.BoolVar(&noExtract, "no-extract", false, "Skip metadata extraction and use fallback data")
	f.BoolVar(&exportIcon, "icon", false, "Export the launcher icon next to the report")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Lang != "" {
		if err := i18n.Init(cfg.Lang); err != nil {
			return err
		}
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())

	source, err := apk.SelectSource(cfg.Analysis.Extractor, logger)
	if err != nil {
		return apperrors.NewConfigurationError(err.Error()).WithContext("key", "analysis.extractor")
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return apperrors.NewConfigurationError(err.Error()).WithContext("key", "output.format")
	}

	opts := []report.Option{
		report.WithFormat(format),
		report.WithOutputDir(cfg.Output.Dir),
	}
	if cfg.Analysis.ExtractIcon {
		opts = append(opts, report.WithIconExport(cfg.Analysis.IconSize))
	}
	assembler := report.NewAssembler(source, security.NewPlaceholder(), logger, opts...)

	input := args[0]
	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintln(out, i18n.T("analyze.start", map[string]interface{}{"Path": input}))
		if st, err := os.Stat(input); err == nil {
			fmt.Fprintln(out, i18n.T("analyze.size", map[string]interface{}{"Size": utils.FormatSize(st.Size())}))
		}
	}

	written, r, err := assembler.Save(input, outputPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, i18n.T("analyze.saved", map[string]interface{}{"Path": written}))
	fmt.Fprintln(out)
	printSummary(out, r)
	return nil
}

// loadConfig reads configuration and applies command-line overrides
func loadConfig(cmd *cobra.Command) (*models.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if flagChanged(cmd, "format") {
		cfg.Output.Format = formatFlag
	}
	if flagChanged(cmd, "no-extract") && noExtract {
		cfg.Analysis.Extractor = apk.ModeNone
	}
	if flagChanged(cmd, "icon") {
		cfg.Analysis.ExtractIcon = exportIcon
	}
	if flagChanged(cmd, "log-format") {
		cfg.Log.Format = logFormat
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if langFlag != "" {
		cfg.Lang = langFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func newLogger(cfg *models.Config, w io.Writer) *utils.ConsoleLogger {
	level, _ := utils.ParseLogLevel(cfg.Log.Level)
	format, _ := utils.ParseLogFormat(cfg.Log.Format)
	return utils.NewLogger(&utils.LoggerConfig{
		Level:       level,
		Format:      format,
		Output:      w,
		EnableColor: cfg.Log.Color && isTerminal(w),
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	st, err := f.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}

func printSummary(out io.Writer, r *models.FullReport) {
	name := r.BasicInfo.PackageName
	if name == "" {
		name = i18n.T("summary.unknownPackage")
	}
	fmt.Fprintln(out, i18n.T("summary.package", map[string]interface{}{"Name": name}))

	fmt.Fprintln(out, i18n.T("summary.permissions", map[string]interface{}{"Count": len(r.Permissions)}))
	if r.HasSyntheticPermissions() {
		fmt.Fprintln(out, "  "+i18n.T("summary.synthetic"))
	}

	fmt.Fprintln(out, i18n.T("summary.score", map[string]interface{}{"Score": r.SecurityAnalysis.OverallScore}))
	if r.SecurityAnalysis.Placeholder {
		fmt.Fprintln(out, "  "+i18n.T("summary.placeholder"))
	}
}

// langFromArgs finds --lang before cobra parses flags, so help text can be
// localized.
func langFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--lang" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, "--lang="); ok {
			return v
		}
	}
	return ""
}
