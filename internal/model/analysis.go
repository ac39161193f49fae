package model

// RiskLevel classifies a learner's trajectory from the summed failure signals.
type RiskLevel string

const (
	RiskOnTrack            RiskLevel = "On Track"
	RiskNeedsAttention     RiskLevel = "Needs Attention"
	RiskSupportRecommended RiskLevel = "Support Recommended"
)

// FailureSignal names one independently computed failure pattern counter.
type FailureSignal string

const (
	SignalConceptual           FailureSignal = "conceptual"
	SignalCognitiveOverload    FailureSignal = "cognitiveOverload"
	SignalConsistencyBreakdown FailureSignal = "consistencyBreakdown"
	// SignalTopicAvoidance is a reserved slot: no rule increments it yet,
	// but it stays part of the fixed signal shape.
	SignalTopicAvoidance    FailureSignal = "topicAvoidance"
	SignalDifficultyPlateau FailureSignal = "difficultyPlateau"
)

// AllFailureSignals fixes the full signal set.
var AllFailureSignals = []FailureSignal{
	SignalConceptual,
	SignalCognitiveOverload,
	SignalConsistencyBreakdown,
	SignalTopicAvoidance,
	SignalDifficultyPlateau,
}

// FailureSignals maps every named signal to its counter. All five keys are
// always present, including reserved ones.
type FailureSignals map[FailureSignal]int

func NewFailureSignals() FailureSignals {
	signals := make(FailureSignals, len(AllFailureSignals))
	for _, s := range AllFailureSignals {
		signals[s] = 0
	}
	return signals
}

// Total sums all counters; the risk tier is a strict function of this sum.
func (f FailureSignals) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Analysis is derived on every request from the learner's current activity
// and test sequences; it is never stored.
type Analysis struct {
	RiskLevel        RiskLevel `json:"riskLevel"`
	Insight          string    `json:"insight"`
	LaggingTopics    []string  `json:"laggingTopics"`
	NeedsAttention   bool      `json:"needsAttention"`
	RecoveryDetected bool      `json:"recoveryDetected"`
}
