package video

import (
	"fmt"

	"github.com/chenBenjamin97/punch-analyzer/pkg/pose"
	"github.com/chenBenjamin97/punch-analyzer/pkg/utils"
	"github.com/spf13/viper"
)

//ExtractorFromConfig builds the pose extractor selected by 'pose.backend'. The returned func releases the model.
func ExtractorFromConfig(opts ...Option) (pose.Extractor, func() error, error) {
	switch backend := viper.GetString("pose.backend"); backend {
	case utils.PoseBackendDNN:
		model, err := NewDNNPoseModel(viper.GetString("pose.model_path"), viper.GetFloat64("pose.person_confidence"), viper.GetFloat64("pose.keypoint_confidence"))
		if err != nil {
			return nil, nil, err
		}

		if viper.GetBool("video.annotate") {
			opts = append(opts, WithAnnotatedOutput(viper.GetString("directory.ready"), viper.GetString("directory.temp"), viper.GetString("video.prod_format")))
		}

		return NewExtractor(model, opts...), model.Close, nil

	case utils.PoseBackendScript:
		ex, err := pose.NewScriptExtractor(viper.GetString("pose.interpreter"), viper.GetString("pose.script_path"))
		if err != nil {
			return nil, nil, err
		}
		return ex, func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("ExtractorFromConfig: unknown pose backend '%s'", backend)
	}
}
