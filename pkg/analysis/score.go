package analysis

import "math"

//Feedback messages returned to the user
const (
	FeedbackNoPose              = "No pose detected in video. Ensure you are fully visible."
	FeedbackNoPunch             = "No full punch detected. Make sure to extend your arm."
	FeedbackGoodSpeed           = "Good speed!"
	FeedbackAverageSpeed        = "Average speed. Try to snap your punch."
	FeedbackTooSlow             = "Too slow. Explosive power needed."
	FeedbackExcellentExtension  = "Excellent extension!"
	FeedbackIncompleteExtension = "Incomplete extension. Fully extend your arm."
)

//Score points
const (
	NoPoseScore       = 0
	NoPunchScore      = 10
	PunchBaseScore    = 50
	FastSpeedBonus    = 30
	AverageSpeedBonus = 15
	ExtensionBonus    = 20
	MaxScore          = 100
)

//Metrics keys in AnalysisResult
const (
	MetricMaxVelocity  = "max_velocity"
	MetricMaxExtension = "max_extension"
)

//Thresholds are the empirical limits used for scoring. Extensions are in degrees, velocities in normalized units per second.
type Thresholds struct {
	PunchExtension      float64 `mapstructure:"punch_extension" json:"punch_extension"`
	ExcellentExtension  float64 `mapstructure:"excellent_extension" json:"excellent_extension"`
	IncompleteExtension float64 `mapstructure:"incomplete_extension" json:"incomplete_extension"`
	FastVelocity        float64 `mapstructure:"fast_velocity" json:"fast_velocity"`
	AverageVelocity     float64 `mapstructure:"average_velocity" json:"average_velocity"`
}

//DefaultThresholds returns the thresholds the scoring was tuned with
func DefaultThresholds() Thresholds {
	return Thresholds{
		PunchExtension:      160,
		ExcellentExtension:  170,
		IncompleteExtension: 140,
		FastVelocity:        2.0,
		AverageVelocity:     1.0,
	}
}

//AnalysisResult is the final output of analyzing one clip
type AnalysisResult struct {
	Score    int                `json:"score"`
	Feedback []string           `json:"feedback"`
	Metrics  map[string]float64 `json:"metrics"`
}

//NoPoseResult is returned for clips where no usable pose was found
func NoPoseResult() AnalysisResult {
	return AnalysisResult{
		Score:    NoPoseScore,
		Feedback: []string{FeedbackNoPose},
		Metrics:  map[string]float64{},
	}
}

//Scorer maps clip metrics to a score and feedback
type Scorer struct {
	Thresholds Thresholds
}

//NewScorer returns a Scorer using given thresholds
func NewScorer(t Thresholds) Scorer {
	return Scorer{Thresholds: t}
}

//Summarize scores given metrics. It is a pure function of its input.
func (s Scorer) Summarize(m ClipMetrics) AnalysisResult {
	t := s.Thresholds
	score := 0
	feedback := make([]string, 0, 2)

	punchDetected := m.MaxRightExtension > t.PunchExtension || m.MaxLeftExtension > t.PunchExtension

	if punchDetected {
		score += PunchBaseScore

		if m.MaxWristVelocity > t.FastVelocity {
			score += FastSpeedBonus
			feedback = append(feedback, FeedbackGoodSpeed)
		} else if m.MaxWristVelocity > t.AverageVelocity {
			score += AverageSpeedBonus
			feedback = append(feedback, FeedbackAverageSpeed)
		} else {
			feedback = append(feedback, FeedbackTooSlow)
		}

		if m.MaxLeftExtension > t.ExcellentExtension || m.MaxRightExtension > t.ExcellentExtension {
			score += ExtensionBonus
			feedback = append(feedback, FeedbackExcellentExtension)
		} else if m.MaxLeftExtension < t.IncompleteExtension && m.MaxRightExtension < t.IncompleteExtension {
			feedback = append(feedback, FeedbackIncompleteExtension)
		}
	} else {
		score = NoPunchScore
		feedback = append(feedback, FeedbackNoPunch)
	}

	if score > MaxScore {
		score = MaxScore
	}

	return AnalysisResult{
		Score:    score,
		Feedback: feedback,
		Metrics: map[string]float64{
			MetricMaxVelocity:  round2(m.MaxWristVelocity),
			MetricMaxExtension: round2(m.MaxExtension()),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
