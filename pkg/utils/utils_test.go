package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/spf13/viper"
)

func TestInSlice(t *testing.T) {
	s := []string{"jab.mp4", "cross.mp4"}
	if !InSlice("cross.mp4", s) {
		t.Error("InSlice(cross.mp4) = false")
	}
	if InSlice("hook.mp4", s) {
		t.Error("InSlice(hook.mp4) = true")
	}
}

func TestStemName(t *testing.T) {
	tests := map[string]string{
		"punch.mp4":           "punch",
		"data/source/a.b.mp4": "a.b",
		"noext":               "noext",
	}
	for in, want := range tests {
		if got := StemName(in); got != want {
			t.Errorf("StemName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp4", "a.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	names, err := ListDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"a.mp4", "b.mp4"}) {
		t.Fatalf("ListDir() = %v", names)
	}

	if _, err := ListDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := writeConfig(t, `
http:
  port: 9090
pose:
  backend: script
analysis:
  fast_velocity: 2.5
`)
	if err := LoadConfig(path); err != nil {
		t.Fatal(err)
	}

	if got := viper.GetString("http.port"); got != "9090" {
		t.Errorf("http.port = %q, want 9090", got)
	}
	if got := viper.GetString("pose.backend"); got != PoseBackendScript {
		t.Errorf("pose.backend = %q", got)
	}
	if got := viper.GetString("video.prod_format"); got != "mp4" {
		t.Errorf("video.prod_format default = %q, want mp4", got)
	}

	th, err := Thresholds()
	if err != nil {
		t.Fatal(err)
	}
	want := analysis.DefaultThresholds()
	want.FastVelocity = 2.5
	if th != want {
		t.Fatalf("Thresholds() = %+v, want %+v", th, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	if err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing config file")
	}
}

func TestThresholdsValidation(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := writeConfig(t, `
analysis:
  fast_velocity: 0.5
  average_velocity: 1.0
`)
	if err := LoadConfig(path); err != nil {
		t.Fatal(err)
	}
	if _, err := Thresholds(); err == nil {
		t.Fatal("expected error when average_velocity is above fast_velocity")
	}
}
