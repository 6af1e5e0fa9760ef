package model

// Range is the closed interval a UI control allows for a parameter.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Clamp pins v into the range.
func (r Range) Clamp(v float64) float64 {
	return max(r.Min, min(r.Max, v))
}

// ClampInt is Clamp for integer controls.
func (r Range) ClampInt(v int) int { return int(r.Clamp(float64(v))) }

// Control ranges of the essay sliders. Engines only reject values outside
// their mathematical domain; callers clamp user input with these.
var (
	MaxDepthRange         = Range{1, 6}
	MinSamplesSplitRange  = Range{2, 10}
	EpsilonRange          = Range{0.05, 0.5}
	MinPointsRange        = Range{2, 10}
	LearningRateRange     = Range{0.01, 0.5}
	IterationsRange       = Range{10, 200}
	ClustersRange         = Range{1, 10}
	NumberOfTreesRange    = Range{1, 50}
	RatioRange            = Range{0.1, 1}
	GridSizeRange         = Range{2, 20}
	SigmaRange            = Range{0.1, 10}
	HiddenLayersRange     = Range{1, 4}
	OutputNodesRange      = Range{1, 4}
	CRange                = Range{0.1, 10}
	GammaRange            = Range{0.1, 10}
	NoiseRange            = Range{0, 1}
	DecisionBoundaryRange = Range{0, 1}
)
