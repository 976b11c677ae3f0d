package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "bigo-sim",
			Version:     "1.0.0",
			Description: "Big-O complexity simulation engine",
		},
		Analysis: AnalysisConfig{
			DefaultInputSize: 10,
			MaxInputSize:     1_000_000,
			MetricSizes:      []int{10, 100, 1000},
		},
		Output: OutputConfig{
			Formats:             []string{"json"},
			OutputDir:           ".",
			IncludeHeatmap:      true,
			IncludeFrames:       true,
			IncludeDescriptions: true,
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
		},
	}
}
