package video

import (
	"context"
	"fmt"
	"math"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"gocv.io/x/gocv"
)

//frameHandler is called for every decoded frame. frame is reused between calls and must not be retained.
type frameHandler func(frame *gocv.Mat, timestampMs float64) error

//source is an opened video with its probed properties
type source struct {
	cap    *gocv.VideoCapture
	fps    float64
	width  int
	height int
	frames int
}

//openSource opens a video file. An unknown frame rate is replaced with analysis.DefaultFPS.
func openSource(videoPath string) (*source, error) {
	cap, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return nil, fmt.Errorf("openSource: Could not open '%s', got '%w'", videoPath, err)
	}

	return &source{
		cap:    cap,
		fps:    analysis.NormalizeFPS(cap.Get(gocv.VideoCaptureFPS)),
		width:  int(cap.Get(gocv.VideoCaptureFrameWidth)),
		height: int(cap.Get(gocv.VideoCaptureFrameHeight)),
		frames: frameCount(cap.Get(gocv.VideoCaptureFrameCount)),
	}, nil
}

//maxFramesHint bounds how many frames are preallocated from a reported frame count
const maxFramesHint = 1 << 16

//frameCount converts the frame count OpenCV reports into a usable hint.
//Streamed or unknown length videos report -1 (or INT64_MIN with the FFmpeg backend), that is 0 here.
func frameCount(reported float64) int {
	if !(reported > 0) || reported > math.MaxInt32 {
		return 0
	}
	return int(reported)
}

//each reads all frames in order and hands them to fn, stopping at the first error or when ctx is done.
//It returns the number of frames read.
func (s *source) each(ctx context.Context, fn frameHandler) (int, error) {
	frame := gocv.NewMat()
	defer frame.Close()

	read := 0
	for {
		if err := ctx.Err(); err != nil {
			return read, err
		}

		if !s.cap.Read(&frame) || frame.Empty() { //finished to read all video's frames
			return read, nil
		}
		read++

		if err := fn(&frame, s.cap.Get(gocv.VideoCapturePosMsec)); err != nil {
			return read, err
		}
	}
}

func (s *source) Close() error {
	return s.cap.Close()
}
