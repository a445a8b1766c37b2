package video

import (
	"fmt"
	"image"
	"sync"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/chenBenjamin97/punch-analyzer/pkg/pose"
	"github.com/chenBenjamin97/punch-analyzer/pkg/utils"
	"gocv.io/x/gocv"
)

//DNNPoseModel runs a YOLOv8 pose network exported to ONNX through OpenCV's DNN module
type DNNPoseModel struct {
	mu  sync.Mutex //a gocv.Net holds its input between SetInput and Forward
	net gocv.Net
	cfg pose.DecodeConfig
}

//NewDNNPoseModel loads the network once. It fails if OpenCV could not read given model.
func NewDNNPoseModel(modelPath string, personConfidence, keypointConfidence float64) (*DNNPoseModel, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("NewDNNPoseModel: '%s': %w", modelPath, ErrModelNotLoaded)
	}

	return &DNNPoseModel{
		net: net,
		cfg: pose.DecodeConfig{
			InputWidth:         utils.YoloInputSize,
			InputHeight:        utils.YoloInputSize,
			PersonConfidence:   personConfidence,
			KeypointConfidence: keypointConfidence,
		},
	}, nil
}

//Estimate returns the joints of the most confident person on given frame, or an empty map if no person was found
func (m *DNNPoseModel) Estimate(frame gocv.Mat) (map[analysis.JointID]analysis.Keypoint, error) {
	//frame is stretched to the square input, so normalized output coordinates map back to the original frame
	blob := gocv.BlobFromImage(frame, 1.0/255.0, image.Pt(utils.YoloInputSize, utils.YoloInputSize), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.net.SetInput(blob, "")
	prob := m.net.Forward("")
	defer prob.Close()

	s := prob.Size() //[1, 56, anchors]
	if len(s) != 3 {
		return nil, fmt.Errorf("Estimate: unexpected network output shape %v", s)
	}

	data, err := prob.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}

	return pose.DecodeYOLOv8(data, s[2], m.cfg)
}

func (m *DNNPoseModel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.net.Close()
}
