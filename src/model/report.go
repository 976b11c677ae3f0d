package model

import "time"

// AnalysisReport wraps one simulation result with report metadata. The
// wrapped result stays pure; the timestamp lives here so repeated analyses
// of the same snippet remain bit-identical.
type AnalysisReport struct {
	Agent       string          `json:"agent"`
	GeneratedAt time.Time       `json:"generated_at"`
	Result      *AnalysisResult `json:"result"`
}

// MetricsReport wraps a performance sweep over several input sizes
type MetricsReport struct {
	Agent       string              `json:"agent"`
	GeneratedAt time.Time           `json:"generated_at"`
	SourceText  string              `json:"source_text"`
	Metrics     []PerformanceMetric `json:"metrics"`
}
