package pose

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

//ScriptExtractor runs an external pose estimation script over a whole video and reads its keypoints stream (see ReadStream)
type ScriptExtractor struct {
	interpreter string
	script      string
}

//NewScriptExtractor makes sure both the interpreter and the script are available
func NewScriptExtractor(interpreter, script string) (*ScriptExtractor, error) {
	if _, err := exec.LookPath(interpreter); err != nil {
		return nil, fmt.Errorf("NewScriptExtractor: interpreter '%s' not found: %w", interpreter, err)
	}

	if _, err := os.Stat(script); err != nil {
		return nil, fmt.Errorf("NewScriptExtractor: pose script: %w", err)
	}

	return &ScriptExtractor{interpreter: interpreter, script: script}, nil
}

//Extract executes the script with '--video <videoPath>' and collects every frame it prints
func (s *ScriptExtractor) Extract(ctx context.Context, videoPath string) (Clip, error) {
	cmd := exec.CommandContext(ctx, s.interpreter, s.script, "--video", videoPath)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Clip{}, fmt.Errorf("Extract: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return Clip{}, fmt.Errorf("Extract: start pose script: %w", err)
	}

	clip, readErr := ReadStream(stdout)
	io.Copy(io.Discard, stdout) //whatever is printed after EOF must be drained before Wait

	if err := cmd.Wait(); err != nil {
		return Clip{}, fmt.Errorf("Extract: pose script exited: %w", err)
	}

	if readErr != nil {
		return Clip{}, readErr
	}

	if len(clip.Frames) == 0 {
		return Clip{}, ErrNoFrames
	}

	return clip, nil
}
