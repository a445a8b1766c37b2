package analysis

import "math"

//ClipMetrics holds the running maxima of a clip. Values only grow while frames are folded in.
type ClipMetrics struct {
	MaxLeftExtension  float64 `json:"max_left_extension"`
	MaxRightExtension float64 `json:"max_right_extension"`
	MaxWristVelocity  float64 `json:"max_wrist_velocity"`
}

//MaxExtension returns the best extension of both arms
func (m ClipMetrics) MaxExtension() float64 {
	return math.Max(m.MaxLeftExtension, m.MaxRightExtension)
}

//Fold returns the metrics updated with one consecutive pair of frames.
//Extension is taken from curr only, and only when both frames have measured arms.
//Velocity is attempted regardless of the angles.
func (m ClipMetrics) Fold(prev, curr FrameRecord, fps float64) ClipMetrics {
	if prev.HasAngles() && curr.HasAngles() {
		m.MaxLeftExtension = math.Max(m.MaxLeftExtension, *curr.LeftArmAngle)
		m.MaxRightExtension = math.Max(m.MaxRightExtension, *curr.RightArmAngle)
	}

	if v, ok := Velocity(prev, curr, fps); ok {
		m.MaxWristVelocity = math.Max(m.MaxWristVelocity, v)
	}

	return m
}

//Aggregate folds all consecutive frame pairs of a clip into ClipMetrics
func Aggregate(records []FrameRecord, fps float64) ClipMetrics {
	var m ClipMetrics
	for i := 1; i < len(records); i++ {
		m = m.Fold(records[i-1], records[i], fps)
	}

	return m
}
