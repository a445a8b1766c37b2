package analysis

//FrameRecord is the analysis of a single frame. Angles and wrist are nil when the arms geometry
//could not be measured on this frame.
type FrameRecord struct {
	TimestampMs   float64  `json:"timestamp_ms"`
	PoseFound     bool     `json:"pose_found"`
	LeftArmAngle  *float64 `json:"left_arm_angle,omitempty"`
	RightArmAngle *float64 `json:"right_arm_angle,omitempty"`
	RightWrist    *Point   `json:"right_wrist,omitempty"`
}

//HasAngles reports whether both elbow angles were measured
func (r FrameRecord) HasAngles() bool {
	return r.LeftArmAngle != nil && r.RightArmAngle != nil
}

//AnalyzeFrame builds a FrameRecord out of one frame's keypoints
func AnalyzeFrame(k KeypointSet) FrameRecord {
	record := FrameRecord{TimestampMs: k.TimestampMs}

	if !k.HasPerson() {
		return record
	}

	//a layout without the arm joints is not a usable pose at all
	for _, id := range ArmJoints {
		if _, ok := k.Points[id]; !ok {
			return record
		}
	}

	record.PoseFound = true

	lShoulder, ok1 := k.Joint(LeftShoulder)
	lElbow, ok2 := k.Joint(LeftElbow)
	lWrist, ok3 := k.Joint(LeftWrist)
	rShoulder, ok4 := k.Joint(RightShoulder)
	rElbow, ok5 := k.Joint(RightElbow)
	rWrist, ok6 := k.Joint(RightWrist)

	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return record
	}

	lAngle := Angle(lShoulder, lElbow, lWrist)
	rAngle := Angle(rShoulder, rElbow, rWrist)

	record.LeftArmAngle = &lAngle
	record.RightArmAngle = &rAngle
	record.RightWrist = &rWrist

	return record
}

//AnalyzeFrames runs AnalyzeFrame over a whole clip, keeping frames order
func AnalyzeFrames(frames []KeypointSet) []FrameRecord {
	records := make([]FrameRecord, 0, len(frames))
	for _, f := range frames {
		records = append(records, AnalyzeFrame(f))
	}

	return records
}
