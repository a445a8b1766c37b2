package analysis

import "math"

const armLength = 0.1

//arm returns shoulder, elbow and wrist positions where the elbow angle equals given degrees and the wrist is at given point
func arm(angle float64, wrist Point) (shoulder, elbow Point) {
	phi := (180 - angle) * math.Pi / 180
	elbow = Point{X: wrist.X - armLength*math.Cos(phi), Y: wrist.Y - armLength*math.Sin(phi)}
	shoulder = Point{X: elbow.X - armLength, Y: elbow.Y}
	return shoulder, elbow
}

func detected(p Point) Keypoint {
	return Keypoint{Point: p, Detected: true}
}

//posedFrame builds a full 17 joints keypoint set with given elbow angles and right wrist position
func posedFrame(ts, leftAngle, rightAngle float64, rightWrist Point) KeypointSet {
	leftWrist := Point{X: 0.3, Y: 0.6}
	lShoulder, lElbow := arm(leftAngle, leftWrist)
	rShoulder, rElbow := arm(rightAngle, rightWrist)

	points := make(map[JointID]Keypoint, JointsNum)
	for id := JointID(0); id < JointsNum; id++ {
		points[id] = detected(Point{X: 0.5, Y: 0.2})
	}
	points[LeftShoulder] = detected(lShoulder)
	points[LeftElbow] = detected(lElbow)
	points[LeftWrist] = detected(leftWrist)
	points[RightShoulder] = detected(rShoulder)
	points[RightElbow] = detected(rElbow)
	points[RightWrist] = detected(rightWrist)

	return KeypointSet{TimestampMs: ts, Points: points}
}

func emptyFrame(ts float64) KeypointSet {
	return KeypointSet{TimestampMs: ts, Points: map[JointID]Keypoint{}}
}

func float(v float64) *float64 {
	return &v
}
