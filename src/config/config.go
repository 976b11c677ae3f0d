package config

// Config is the root configuration structure
type Config struct {
	Agent    AgentConfig    `yaml:"agent"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// AnalysisConfig contains defaults and limits for simulation runs
type AnalysisConfig struct {
	DefaultInputSize int   `yaml:"default_input_size"`
	MaxInputSize     int   `yaml:"max_input_size"`
	MetricSizes      []int `yaml:"metric_sizes"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats             []string `yaml:"formats"`
	OutputDir           string   `yaml:"output_dir"`
	IncludeHeatmap      bool     `yaml:"include_heatmap"`
	IncludeFrames       bool     `yaml:"include_frames"`
	IncludeDescriptions bool     `yaml:"include_descriptions"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}
