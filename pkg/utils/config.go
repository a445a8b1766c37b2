package utils

import (
	"fmt"
	"strings"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/spf13/viper"
)

//SetDefaults registers a default value for every configuration key, so a partial config file is enough
func SetDefaults() {
	viper.SetDefault("http.port", "8080")

	viper.SetDefault("frontend.static-files-path", "") //empty - no frontend is served

	viper.SetDefault("directory.root", "./data/")
	viper.SetDefault("directory.source", "./data/source/")
	viper.SetDefault("directory.ready", "./data/ready/")
	viper.SetDefault("directory.temp", "./data/temp/")

	viper.SetDefault("video.prod_format", "mp4")
	viper.SetDefault("video.annotate", true)

	viper.SetDefault("pose.backend", PoseBackendDNN)
	viper.SetDefault("pose.model_path", "./models/yolov8n-pose.onnx")
	viper.SetDefault("pose.interpreter", "python3")
	viper.SetDefault("pose.script_path", "./scripts/pose_stream.py")
	viper.SetDefault("pose.person_confidence", 0.5)
	viper.SetDefault("pose.keypoint_confidence", 0.5)

	viper.SetDefault("database.dsn", "./data/results.db")

	t := analysis.DefaultThresholds()
	viper.SetDefault("analysis.punch_extension", t.PunchExtension)
	viper.SetDefault("analysis.excellent_extension", t.ExcellentExtension)
	viper.SetDefault("analysis.incomplete_extension", t.IncompleteExtension)
	viper.SetDefault("analysis.fast_velocity", t.FastVelocity)
	viper.SetDefault("analysis.average_velocity", t.AverageVelocity)
}

//LoadConfig reads given yaml config file, or 'config.yaml' from working directory if path is empty.
//Environment variables (PUNCH_ prefix, '.' replaced by '_') override file values.
func LoadConfig(path string) error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("LoadConfig: Could not read config file, got '%w'", err)
	}

	return nil
}

//Thresholds returns the scoring thresholds from 'analysis' config section
func Thresholds() (analysis.Thresholds, error) {
	t := analysis.DefaultThresholds()
	if err := viper.UnmarshalKey("analysis", &t); err != nil {
		return t, fmt.Errorf("Thresholds: %w", err)
	}

	if t.AverageVelocity > t.FastVelocity {
		return t, fmt.Errorf("Thresholds: average_velocity (%v) is above fast_velocity (%v)", t.AverageVelocity, t.FastVelocity)
	}

	if t.IncompleteExtension > t.ExcellentExtension {
		return t, fmt.Errorf("Thresholds: incomplete_extension (%v) is above excellent_extension (%v)", t.IncompleteExtension, t.ExcellentExtension)
	}

	return t, nil
}
