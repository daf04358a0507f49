package models

// Config represents the application configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output" json:"output"`
	Analysis AnalysisConfig `mapstructure:"analysis" json:"analysis"`
	Log      LogConfig      `mapstructure:"log" json:"log"`
	Lang     string         `mapstructure:"lang" json:"lang"`
}

// OutputConfig controls where and how reports are written
type OutputConfig struct {
	Format string `mapstructure:"format" json:"format"` // "json", "yaml" or empty to infer
	Dir    string `mapstructure:"dir" json:"dir"`       // Directory for default-named reports
}

// AnalysisConfig controls metadata extraction
type AnalysisConfig struct {
	Extractor   string `mapstructure:"extractor" json:"extractor"` // "auto", "androidbinary", "none"
	ExtractIcon bool   `mapstructure:"extract_icon" json:"extract_icon"`
	IconSize    uint   `mapstructure:"icon_size" json:"icon_size"`
}

// LogConfig controls console logging
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" json:"format"` // text, compact, json
	Color  bool   `mapstructure:"color" json:"color"`
}
