package pose

import (
	"fmt"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
)

//YOLOv8 pose output is [1, 56, anchors]: 4 box values, person confidence, then x,y,confidence for each of the 17 joints
const (
	yoloBoxValues    = 4
	yoloKeypointsOff = yoloBoxValues + 1
	yoloChannels     = yoloKeypointsOff + analysis.JointsNum*3
)

//DecodeConfig holds the input size the network was fed with and the confidence limits
type DecodeConfig struct {
	InputWidth         float64
	InputHeight        float64
	PersonConfidence   float64
	KeypointConfidence float64
}

//DecodeYOLOv8 picks the most confident person out of a YOLOv8 pose output tensor and returns its joints in
//normalized coordinates. Joints under KeypointConfidence are marked undetected. The returned map is empty
//if no person passed PersonConfidence.
func DecodeYOLOv8(out []float32, anchors int, cfg DecodeConfig) (map[analysis.JointID]analysis.Keypoint, error) {
	if anchors <= 0 || len(out) != yoloChannels*anchors {
		return nil, fmt.Errorf("DecodeYOLOv8: unexpected output size %d for %d anchors", len(out), anchors)
	}

	at := func(channel, anchor int) float64 {
		return float64(out[channel*anchors+anchor])
	}

	best, bestConf := -1, cfg.PersonConfidence
	for i := 0; i < anchors; i++ {
		if conf := at(yoloBoxValues, i); conf > bestConf {
			best, bestConf = i, conf
		}
	}

	points := make(map[analysis.JointID]analysis.Keypoint, analysis.JointsNum)
	if best < 0 {
		return points, nil
	}

	for j := 0; j < analysis.JointsNum; j++ {
		ch := yoloKeypointsOff + j*3
		points[analysis.JointID(j)] = analysis.Keypoint{
			Point: analysis.Point{
				X: clamp01(at(ch, best) / cfg.InputWidth),
				Y: clamp01(at(ch+1, best) / cfg.InputHeight),
			},
			Detected: at(ch+2, best) >= cfg.KeypointConfidence,
		}
	}

	return points, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
