package video

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/chenBenjamin97/punch-analyzer/pkg/pose"
	"github.com/chenBenjamin97/punch-analyzer/pkg/utils"
	"github.com/cheggaaa/pb/v3"
	"gocv.io/x/gocv"
)

var _ pose.Extractor = (*Extractor)(nil)

//Extractor decodes a video with OpenCV, runs the pose model on every frame and optionally writes
//an annotated copy of the video with the arms skeleton and elbow angles plotted above it
type Extractor struct {
	model        *DNNPoseModel
	readyDir     string
	tempDir      string
	outputFormat string
	showProgress bool
}

type Option func(*Extractor)

//WithAnnotatedOutput enables writing the annotated video to readyDir, in given format ('mp4' etc.).
//tempDir holds the intermediate '.avi' file until ffmpeg converted it.
func WithAnnotatedOutput(readyDir, tempDir, format string) Option {
	return func(e *Extractor) {
		e.readyDir = readyDir
		e.tempDir = tempDir
		e.outputFormat = format
	}
}

//WithProgressBar prints a progress bar over the video's frames
func WithProgressBar() Option {
	return func(e *Extractor) {
		e.showProgress = true
	}
}

func NewExtractor(model *DNNPoseModel, opts ...Option) *Extractor {
	e := Extractor{model: model}
	for _, opt := range opts {
		opt(&e)
	}
	return &e
}

//AnnotatedPath returns where the annotated version of given source video is written
func (e *Extractor) AnnotatedPath(videoPath string) string {
	return filepath.Join(e.readyDir, utils.StemName(videoPath)+"."+e.outputFormat)
}

//Extract reads every frame of given video and returns its keypoints.
//A frame the pose model failed on is kept as a frame without a person.
func (e *Extractor) Extract(ctx context.Context, videoPath string) (pose.Clip, error) {
	src, err := openSource(videoPath)
	if err != nil {
		return pose.Clip{}, err
	}
	defer src.Close()

	clip := pose.Clip{FPS: src.fps, Frames: make([]analysis.KeypointSet, 0, min(src.frames, maxFramesHint))}

	var writer *gocv.VideoWriter
	var tmpVideoPath string
	if e.readyDir != "" {
		tmpVideoPath = filepath.Join(e.tempDir, utils.StemName(videoPath)+".avi")
		writer, err = gocv.VideoWriterFile(tmpVideoPath, utils.AnnotatedVideoCodec, src.fps, src.width, src.height, true)
		if err != nil {
			return pose.Clip{}, fmt.Errorf("Extract: Could not create '%s', got '%w'", tmpVideoPath, err)
		}
		defer os.Remove(tmpVideoPath) //remove '.avi' temp file at the end of this function
	}
	closeWriter := func() {
		if writer != nil {
			writer.Close()
			writer = nil
		}
	}
	defer closeWriter()

	var bar *pb.ProgressBar
	if e.showProgress {
		bar = utils.NewProgressBar(src.frames, filepath.Base(videoPath))
		defer bar.Finish()
	}

	read, err := src.each(ctx, func(frame *gocv.Mat, timestampMs float64) error {
		points, err := e.model.Estimate(*frame)
		if err != nil {
			log.Printf("Extract: Error estimating pose on '%s' at %.0fms, got '%v'. Skipping.", videoPath, timestampMs, err)
			points = map[analysis.JointID]analysis.Keypoint{}
		}

		k := analysis.KeypointSet{TimestampMs: timestampMs, Points: points}
		clip.Frames = append(clip.Frames, k)

		if writer != nil {
			plotArmsOnFrame(frame, k, analysis.AnalyzeFrame(k))
			if err := writer.Write(*frame); err != nil {
				return fmt.Errorf("Extract: Could not write annotated frame, got '%w'", err)
			}
		}

		if bar != nil {
			bar.Increment()
		}

		return nil
	})
	if err != nil {
		return pose.Clip{}, err
	}

	if read == 0 {
		return pose.Clip{}, pose.ErrNoFrames
	}

	if tmpVideoPath != "" {
		closeWriter()
		//Convert from 'avi' to the production format. example: ffmpeg -i punch.avi punch.mp4
		cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-i", tmpVideoPath, e.AnnotatedPath(videoPath))
		if err := cmd.Run(); err != nil {
			log.Printf("Extract: Error from ffmpeg, got '%v'", err)
		}
	}

	return clip, nil
}
