package video

import (
	"errors"
	"image/color"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
)

//ErrModelNotLoaded is returned when OpenCV could not load the pose network
var ErrModelNotLoaded = errors.New("pose model could not be loaded")

//limb is a segment between two joints drawn on annotated frames
type limb struct {
	from, to analysis.JointID
}

var armLimbs = []limb{
	{analysis.LeftShoulder, analysis.RightShoulder},
	{analysis.LeftShoulder, analysis.LeftElbow},
	{analysis.LeftElbow, analysis.LeftWrist},
	{analysis.RightShoulder, analysis.RightElbow},
	{analysis.RightElbow, analysis.RightWrist},
}

var leftArmColor = color.RGBA{0, 255, 0, 0}
var rightArmColor = color.RGBA{255, 0, 0, 0}
var jointColor = color.RGBA{0, 0, 255, 0}
var whiteRGB = color.RGBA{255, 255, 255, 0}

//limbColor returns the color a limb is plotted with, by the side of its second joint
func limbColor(l limb) color.RGBA {
	switch l.to {
	case analysis.LeftElbow, analysis.LeftWrist:
		return leftArmColor
	case analysis.RightElbow, analysis.RightWrist:
		return rightArmColor
	default:
		return jointColor
	}
}
