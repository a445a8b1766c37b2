package analysis

import "math"

//DefaultFPS is used when the video's frame rate could not be probed
const DefaultFPS = 30

//NormalizeFPS replaces an unknown (zero or negative) frame rate with DefaultFPS
func NormalizeFPS(fps float64) float64 {
	if fps <= 0 {
		return DefaultFPS
	}

	return fps
}

//Velocity returns the right wrist speed between two consecutive frames, in normalized units per second.
//ok is false when one of the frames has no pose or no wrist position.
func Velocity(prev, curr FrameRecord, fps float64) (velocity float64, ok bool) {
	if !prev.PoseFound || !curr.PoseFound {
		return 0, false
	}

	if prev.RightWrist == nil || curr.RightWrist == nil {
		return 0, false
	}

	dist := math.Hypot(curr.RightWrist.X-prev.RightWrist.X, curr.RightWrist.Y-prev.RightWrist.Y)

	return dist * fps, true
}
