package video

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/chenBenjamin97/punch-analyzer/pkg/pose"
	"github.com/chenBenjamin97/punch-analyzer/pkg/utils"
	"github.com/spf13/viper"
)

func TestFrameCount(t *testing.T) {
	tests := []struct {
		name     string
		reported float64
		want     int
	}{
		{"known", 120, 120},
		{"empty", 0, 0},
		{"unknown", -1, 0},
		{"ffmpeg unknown", float64(math.MinInt64), 0},
		{"nan", math.NaN(), 0},
		{"overflow", math.MaxInt64, 0},
	}

	for _, tc := range tests {
		got := frameCount(tc.reported)
		if got != tc.want {
			t.Errorf("%s: frameCount(%v) = %d, want %d", tc.name, tc.reported, got, tc.want)
		}

		//the hint is used as a slice capacity
		_ = make([]analysis.KeypointSet, 0, min(got, maxFramesHint))
	}
}

func TestToPixel(t *testing.T) {
	tests := []struct {
		p    analysis.Point
		want image.Point
	}{
		{analysis.Point{X: 0, Y: 0}, image.Pt(0, 0)},
		{analysis.Point{X: 0.5, Y: 0.25}, image.Pt(320, 120)},
		{analysis.Point{X: 1, Y: 1}, image.Pt(640, 480)},
	}

	for _, tc := range tests {
		if got := toPixel(tc.p, 640, 480); got != tc.want {
			t.Errorf("toPixel(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestLimbColor(t *testing.T) {
	for _, l := range armLimbs {
		got := limbColor(l)
		switch {
		case l.to == analysis.LeftElbow || l.to == analysis.LeftWrist:
			if got != leftArmColor {
				t.Errorf("limbColor(%v) = %v, want left arm color", l, got)
			}
		case l.to == analysis.RightElbow || l.to == analysis.RightWrist:
			if got != rightArmColor {
				t.Errorf("limbColor(%v) = %v, want right arm color", l, got)
			}
		default:
			if got != jointColor {
				t.Errorf("limbColor(%v) = %v, want joint color", l, got)
			}
		}
	}
}

func TestExtractorFromConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("pose.backend", "openpose")
	if _, _, err := ExtractorFromConfig(); err == nil {
		t.Fatal("unknown backend should fail")
	}

	viper.Set("pose.backend", utils.PoseBackendScript)
	viper.Set("pose.interpreter", "sh")
	viper.Set("pose.script_path", filepath.Join(t.TempDir(), "missing.sh"))
	if _, _, err := ExtractorFromConfig(); err == nil {
		t.Fatal("missing pose script should fail")
	}

	script := filepath.Join(t.TempDir(), "pose.sh")
	if err := os.WriteFile(script, []byte("echo EOF\n"), 0644); err != nil {
		t.Fatal(err)
	}
	viper.Set("pose.script_path", script)

	ex, closeExtractor, err := ExtractorFromConfig()
	if err != nil {
		t.Fatal(err)
	}
	defer closeExtractor()

	if _, ok := ex.(*pose.ScriptExtractor); !ok {
		t.Fatalf("script backend built %T", ex)
	}
}
