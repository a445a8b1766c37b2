package analysis

//Analyzer ties frame analysis, aggregation and scoring together for a whole clip.
//It keeps no state between calls, so one Analyzer may serve concurrent callers.
type Analyzer struct {
	scorer Scorer
}

//NewAnalyzer returns an Analyzer scoring with given thresholds
func NewAnalyzer(t Thresholds) *Analyzer {
	return &Analyzer{scorer: NewScorer(t)}
}

//AnalyzeClip scores a clip given all its frames' keypoints in presentation order and its frame rate
func (a *Analyzer) AnalyzeClip(frames []KeypointSet, fps float64) AnalysisResult {
	return a.AnalyzeRecords(AnalyzeFrames(frames), fps)
}

//AnalyzeRecords scores a clip out of already analyzed frames
func (a *Analyzer) AnalyzeRecords(records []FrameRecord, fps float64) AnalysisResult {
	if len(records) < 2 || !anyPoseFound(records) {
		return NoPoseResult()
	}

	return a.scorer.Summarize(Aggregate(records, NormalizeFPS(fps)))
}

func anyPoseFound(records []FrameRecord) bool {
	for _, r := range records {
		if r.PoseFound {
			return true
		}
	}

	return false
}
