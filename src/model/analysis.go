package model

// CodeLine is one classified snippet line. Lines are numbered sequentially
// from 1 over the lines the classifier actually emits; unrecognized lines
// consume no number.
type CodeLine struct {
	Number int           `json:"number"`
	Text   string        `json:"text"`
	Tag    ComplexityTag `json:"tag"`
}

// LineCost is the synthetic operation count attributed to one classified line
type LineCost struct {
	LineNumber int `json:"line_number"`
	Count      int `json:"count"`
}

// HeatmapEntry is one line's share of the total operation count, in [0,1]
type HeatmapEntry struct {
	LineNumber int     `json:"line_number"`
	Intensity  float64 `json:"intensity"`
}

// AnimationFrame sequences one line for playback. Timestamps advance in
// fixed steps of FrameInterval time-units in processing order.
type AnimationFrame struct {
	LineNumber int           `json:"line_number"`
	Count      int           `json:"count"`
	Tag        ComplexityTag `json:"tag"`
	Timestamp  float64       `json:"timestamp"`
}

// FrameInterval is the playback spacing between consecutive animation frames
const FrameInterval = 0.1

// AnalysisResult is the complete output of one simulation run. It is a pure
// function of (SourceText, InputSize): no wall-clock fields, no hidden state.
type AnalysisResult struct {
	SourceText string           `json:"source_text"`
	InputSize  int              `json:"input_size"`
	Lines      []CodeLine       `json:"lines"`
	Costs      []LineCost       `json:"costs"`
	TotalOps   int              `json:"total_ops"`
	Overall    ComplexityTag    `json:"overall"`
	Heatmap    []HeatmapEntry   `json:"heatmap"`
	Frames     []AnimationFrame `json:"frames"`
}

// PerformanceMetric summarizes one analysis run at a given input size.
// EstimatedTime is TotalOps scaled by a fixed per-operation constant,
// for display only.
type PerformanceMetric struct {
	InputSize     int           `json:"input_size"`
	TotalOps      int           `json:"total_ops"`
	Overall       ComplexityTag `json:"overall"`
	EstimatedTime float64       `json:"estimated_time"`
}
