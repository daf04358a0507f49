package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/huanfeng/apkscope/internal/errors"
	"github.com/huanfeng/apkscope/pkg/apk"
	"github.com/huanfeng/apkscope/pkg/models"
	"github.com/huanfeng/apkscope/pkg/report"
	"github.com/huanfeng/apkscope/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. APKSCOPE_OUTPUT_FORMAT
const EnvPrefix = "APKSCOPE"

// DefaultConfigName is the config file name searched for without extension
const DefaultConfigName = "apkscope"

var defaultConfig = models.Config{
	Output: models.OutputConfig{
		Format: "",
		Dir:    "",
	},
	Analysis: models.AnalysisConfig{
		Extractor:   apk.ModeAuto,
		ExtractIcon: false,
		IconSize:    apk.DefaultIconSize,
	},
	Log: models.LogConfig{
		Level:  "info",
		Format: "text",
		Color:  true,
	},
	Lang: "",
}

// Default returns a copy of the built-in configuration
func Default() models.Config {
	return defaultConfig
}

// Load loads configuration from defaults, an optional config file, an
// optional .env file and APKSCOPE_* environment variables, in increasing
// precedence.
func Load(configPath string) (*models.Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("output.format", defaultConfig.Output.Format)
	v.SetDefault("output.dir", defaultConfig.Output.Dir)
	v.SetDefault("analysis.extractor", defaultConfig.Analysis.Extractor)
	v.SetDefault("analysis.extract_icon", defaultConfig.Analysis.ExtractIcon)
	v.SetDefault("analysis.icon_size", defaultConfig.Analysis.IconSize)
	v.SetDefault("log.level", defaultConfig.Log.Level)
	v.SetDefault("log.format", defaultConfig.Log.Format)
	v.SetDefault("log.color", defaultConfig.Log.Color)
	v.SetDefault("lang", defaultConfig.Lang)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, apperrors.WrapError(err, apperrors.ErrorTypeConfiguration, apperrors.CodeInvalidConfig,
				"failed to read config file")
		}
		// No config file: defaults apply
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg models.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.WrapError(err, apperrors.ErrorTypeConfiguration, apperrors.CodeInvalidConfig,
			"failed to unmarshal config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings
func Validate(cfg *models.Config) error {
	if _, err := report.ParseFormat(cfg.Output.Format); err != nil {
		return apperrors.NewConfigurationError(err.Error()).WithContext("key", "output.format")
	}
	switch strings.ToLower(cfg.Analysis.Extractor) {
	case "", apk.ModeAuto, apk.ModeAndroidBinary, apk.ModeNone:
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unknown extractor %q", cfg.Analysis.Extractor)).
			WithContext("key", "analysis.extractor")
	}
	if _, err := utils.ParseLogLevel(cfg.Log.Level); err != nil {
		return apperrors.NewConfigurationError(err.Error()).WithContext("key", "log.level")
	}
	if _, err := utils.ParseLogFormat(cfg.Log.Format); err != nil {
		return apperrors.NewConfigurationError(err.Error()).WithContext("key", "log.format")
	}
	return nil
}

// SaveTemplate saves a configuration template
func SaveTemplate(path string) error {
	templateContent := `# apkscope configuration file

output:
  # Report format: json or yaml. Empty infers it from --output,
  # falling back to json.
  format: ""

  # Directory for default-named reports (<apk>_analysis_report.<ext>).
  # Empty writes to the working directory.
  dir: ""

analysis:
  # Metadata extractor:
  # - "auto": use androidbinary, fall back to demo data if unavailable (default)
  # - "androidbinary": require androidbinary
  # - "none": skip extraction; the report uses demo permissions
  extractor: "auto"

  # Export the launcher icon as PNG next to the report
  extract_icon: false

  # Edge length in pixels of the exported icon
  icon_size: 144

log:
  # debug, info, warn, error
  level: "info"

  # text, compact, json
  format: "text"

  # Colored text output
  color: true

# UI language (en, zh). Empty selects from the environment.
lang: ""
`

	return os.WriteFile(path, []byte(templateContent), 0644)
}
