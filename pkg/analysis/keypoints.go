package analysis

//JointID is an index in the 17 points COCO body layout
type JointID int

const (
	Nose JointID = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
)

//JointsNum is the number of joints in the body layout
const JointsNum = 17

//ArmJoints are the joints needed in order to measure both arms
var ArmJoints = []JointID{LeftShoulder, RightShoulder, LeftElbow, RightElbow, LeftWrist, RightWrist}

//Point is a position in normalized image coordinates ([0,1] on both axises)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

//Keypoint is a single joint observation. Detected is false when the pose model could not localize this joint.
type Keypoint struct {
	Point
	Detected bool `json:"detected"`
}

//KeypointSet is the pose observed on one frame. Points is empty if no person was found in the frame.
type KeypointSet struct {
	TimestampMs float64              `json:"timestamp_ms"`
	Points      map[JointID]Keypoint `json:"points"`
}

//Joint returns the position of given joint, ok is false when the joint is missing or undetected
func (k KeypointSet) Joint(id JointID) (Point, bool) {
	kp, ok := k.Points[id]
	if !ok || !kp.Detected {
		return Point{}, false
	}

	return kp.Point, true
}

//HasPerson reports whether a person was detected on this frame
func (k KeypointSet) HasPerson() bool {
	return len(k.Points) > 0
}
