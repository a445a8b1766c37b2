package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/chenBenjamin97/punch-analyzer/pkg/pose"
	"github.com/chenBenjamin97/punch-analyzer/pkg/store"
)

//ResultSaver persists analysis results
type ResultSaver interface {
	Save(ctx context.Context, videoName string, res analysis.AnalysisResult) (store.Result, error)
}

//Processor extracts a video's keypoints, scores the punch and stores the result
type Processor struct {
	extractor pose.Extractor
	analyzer  *analysis.Analyzer
	saver     ResultSaver
	sourceDir string
}

//NewProcessor returns a Processor. saver may be nil, then results are not stored.
func NewProcessor(extractor pose.Extractor, analyzer *analysis.Analyzer, saver ResultSaver, sourceDir string) *Processor {
	return &Processor{
		extractor: extractor,
		analyzer:  analyzer,
		saver:     saver,
		sourceDir: sourceDir,
	}
}

//AnalyzeFile scores the video at given path and stores the result under the file's base name
func (p *Processor) AnalyzeFile(ctx context.Context, videoPath string) (analysis.AnalysisResult, error) {
	clip, err := p.extractor.Extract(ctx, videoPath)
	if err != nil {
		return analysis.AnalysisResult{}, fmt.Errorf("AnalyzeFile: '%s': %w", videoPath, err)
	}

	return p.AnalyzeClip(ctx, filepath.Base(videoPath), clip)
}

//AnalyzeClip scores already extracted keypoints. The result is stored when name is not empty.
func (p *Processor) AnalyzeClip(ctx context.Context, name string, clip pose.Clip) (analysis.AnalysisResult, error) {
	res := p.analyzer.AnalyzeClip(clip.Frames, clip.FPS)

	if p.saver != nil && name != "" {
		if _, err := p.saver.Save(ctx, name, res); err != nil {
			return res, fmt.Errorf("AnalyzeClip: %w", err)
		}
	}

	return res, nil
}

//Process analyzes an uploaded video (by its name in the source directory). It only logs failures,
//it is meant to run in its own goroutine after an upload.
func (p *Processor) Process(videoName string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Process: Recovered while analyzing '%s', got '%v'", videoName, r)
		}
	}()

	videoPath := filepath.Join(p.sourceDir, videoName)

	res, err := p.AnalyzeFile(context.Background(), videoPath)
	if err != nil {
		log.Printf("Process: Error analyzing '%s', got '%v'", videoName, err)
		return
	}

	log.Printf("Process: '%s' analyzed, score %d, feedback %q", videoName, res.Score, res.Feedback)
}
