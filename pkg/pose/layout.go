package pose

import (
	"context"
	"errors"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
)

//ErrNoFrames is returned when a video produced no frames at all
var ErrNoFrames = errors.New("no frames read from video")

//Clip is the keypoints of a whole video, one set per decoded frame
type Clip struct {
	FPS    float64                `json:"fps"`
	Frames []analysis.KeypointSet `json:"frames"`
}

//Extractor turns a video file into a Clip
type Extractor interface {
	Extract(ctx context.Context, videoPath string) (Clip, error)
}

//FromXY converts keypoints given in the COCO layout order into a KeypointSet.
//A (0,0) pair is how pose models mark an undetected joint, so it is stored as undetected.
//An empty xy slice means no person was found.
func FromXY(timestampMs float64, xy [][2]float64) analysis.KeypointSet {
	k := analysis.KeypointSet{
		TimestampMs: timestampMs,
		Points:      make(map[analysis.JointID]analysis.Keypoint, len(xy)),
	}

	for i, p := range xy {
		if i >= analysis.JointsNum {
			break
		}

		k.Points[analysis.JointID(i)] = analysis.Keypoint{
			Point:    analysis.Point{X: p[0], Y: p[1]},
			Detected: p[0] != 0 || p[1] != 0,
		}
	}

	return k
}
