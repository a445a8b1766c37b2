package pose

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
)

//frameLine is one frame printed by the pose script
type frameLine struct {
	Frame       int          `json:"frame"`
	TimestampMs float64      `json:"timestamp_ms"`
	Keypoints   [][2]float64 `json:"keypoints"`
}

//ReadStream parses the pose script's standard output. Expected lines are:
//
//	FPS: 29.97
//	{"frame":1,"timestamp_ms":0,"keypoints":[[x,y],...]}
//	EOF
//
//keypoints holds the 17 COCO joints in normalized coordinates, an empty list when no person was found.
//Any other line is treated as a log print and skipped.
func ReadStream(r io.Reader) (Clip, error) {
	clip := Clip{Frames: make([]analysis.KeypointSet, 0)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "EOF" { //finished to read all frames
			clip.FPS = analysis.NormalizeFPS(clip.FPS)
			return clip, nil
		}

		if strings.HasPrefix(line, "FPS: ") {
			if fps, err := strconv.ParseFloat(strings.TrimPrefix(line, "FPS: "), 64); err == nil {
				clip.FPS = fps
			} else {
				log.Printf("ReadStream: Could not parse fps line '%s', got '%v'", line, err)
			}
			continue
		}

		if strings.HasPrefix(line, "{\"frame\":") {
			f := frameLine{}
			if err := json.Unmarshal([]byte(line), &f); err != nil {
				log.Printf("ReadStream: Error, got '%v'", err)
				continue
			}
			clip.Frames = append(clip.Frames, FromXY(f.TimestampMs, f.Keypoints))
		}
	}

	if err := scanner.Err(); err != nil {
		return clip, fmt.Errorf("ReadStream: %w", err)
	}

	return clip, fmt.Errorf("ReadStream: stream ended without EOF line: %w", io.ErrUnexpectedEOF)
}
