package video

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/chenBenjamin97/punch-analyzer/pkg/utils"
	"gocv.io/x/gocv"
)

//toPixel converts a normalized point into frame's pixel coordinates
func toPixel(p analysis.Point, width, height int) image.Point {
	return image.Pt(int(p.X*float64(width)), int(p.Y*float64(height)))
}

//plotArmsOnFrame plots the arms skeleton of given keypoints and writes elbow angles next to the elbows.
//Limbs with an undetected joint are not plotted.
func plotArmsOnFrame(frame *gocv.Mat, k analysis.KeypointSet, record analysis.FrameRecord) {
	if !record.PoseFound {
		return
	}

	width, height := frame.Cols(), frame.Rows()

	for _, l := range armLimbs {
		from, ok1 := k.Joint(l.from)
		to, ok2 := k.Joint(l.to)
		if !ok1 || !ok2 {
			continue
		}
		gocv.Line(frame, toPixel(from, width, height), toPixel(to, width, height), limbColor(l), utils.ArmLineThickness)
	}

	for _, id := range analysis.ArmJoints {
		if p, ok := k.Joint(id); ok {
			gocv.Circle(frame, toPixel(p, width, height), 4, jointColor, -1) //thickness -1 == filled circle
		}
	}

	if !record.HasAngles() {
		return
	}

	lElbow, _ := k.Joint(analysis.LeftElbow)
	rElbow, _ := k.Joint(analysis.RightElbow)
	plotAngle(frame, toPixel(lElbow, width, height), *record.LeftArmAngle, leftArmColor)
	plotAngle(frame, toPixel(rElbow, width, height), *record.RightArmAngle, rightArmColor)
}

//plotAngle writes an angle on a filled background above given point
func plotAngle(frame *gocv.Mat, at image.Point, angle float64, plotColor color.RGBA) {
	text := fmt.Sprintf("%.0f deg", angle)
	start := image.Pt(at.X+8, at.Y-8)

	textBackgroundRect := image.Rect(start.X, start.Y-15, start.X+75, start.Y+5)
	gocv.Rectangle(frame, textBackgroundRect, plotColor, -1) //thickness -1 == filled rectangle
	gocv.PutText(frame, text, start, gocv.FontHersheyPlain, 1, whiteRGB, 2)
}
