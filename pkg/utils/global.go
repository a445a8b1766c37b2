package utils

//YoloInputSize is the width and height of the pose network's input blob
const YoloInputSize = 640

//AnnotatedVideoCodec is the fourcc used for the temporary annotated video (XVID == MPEG-4 codec, '.avi' extension)
const AnnotatedVideoCodec = "XVID"

//PoseBackendDNN runs the pose model in process through OpenCV's DNN module
const PoseBackendDNN = "dnn"

//PoseBackendScript runs an external pose estimation script and reads its keypoints from standard output
const PoseBackendScript = "script"

//EnvPrefix is the prefix of environment variables overriding config file values (PUNCH_HTTP_PORT etc.)
const EnvPrefix = "PUNCH"

//ArmLineThickness is the thickness of arm lines plotted on annotated videos
const ArmLineThickness = 3
