package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/chenBenjamin97/punch-analyzer/pkg/service"
	"github.com/chenBenjamin97/punch-analyzer/pkg/store"
	"github.com/chenBenjamin97/punch-analyzer/pkg/utils"
	"github.com/chenBenjamin97/punch-analyzer/pkg/video"
	"github.com/spf13/viper"
)

var configPath string
var backend string
var save bool
var annotate bool

func init() {
	flag.StringVar(&configPath, "config", "", "set config file path (default ./config.yaml)")
	flag.StringVar(&backend, "backend", "", "override pose backend (dnn|script)")
	flag.BoolVar(&save, "save", false, "store results in the configured database")
	flag.BoolVar(&annotate, "annotate", false, "write annotated videos to the ready directory (dnn backend only)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] video...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
}

//result is printed as one json line per analyzed video
type result struct {
	Video string `json:"video"`
	analysis.AnalysisResult
	Error string `json:"error,omitempty"`
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(flag.Args(), os.Stdout))
}

//run analyzes given videos and returns the process exit code. Every resource is released before it returns.
func run(videos []string, out io.Writer) int {
	if err := utils.LoadConfig(configPath); err != nil {
		log.Printf("Warning: %v, using defaults", err)
	}
	if backend != "" {
		viper.Set("pose.backend", backend)
	}
	viper.Set("video.annotate", annotate)

	thresholds, err := utils.Thresholds()
	if err != nil {
		log.Printf("Error: Invalid analysis thresholds, got '%v'", err)
		return 1
	}

	extractor, closeExtractor, err := video.ExtractorFromConfig(video.WithProgressBar())
	if err != nil {
		log.Printf("Error: Could not initialize pose model, got '%v'", err)
		return 1
	}
	defer closeExtractor()

	var saver service.ResultSaver
	if save {
		results, err := store.Open(viper.GetString("database.dsn"))
		if err != nil {
			log.Printf("Error: Could not open results database, got '%v'", err)
			return 1
		}
		defer results.Close()
		saver = results
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	processor := service.NewProcessor(extractor, analysis.NewAnalyzer(thresholds), saver, "")
	enc := json.NewEncoder(out)

	failed := 0
	for _, videoPath := range videos {
		res := result{Video: videoPath}

		analyzed, err := processor.AnalyzeFile(ctx, videoPath)
		if err != nil {
			log.Printf("Error analyzing '%s', got '%v'", videoPath, err)
			res.Error = err.Error()
			failed++
		} else {
			res.AnalysisResult = analyzed
		}

		if err := enc.Encode(res); err != nil {
			log.Printf("Error: %v", err)
			return 1
		}

		if ctx.Err() != nil {
			break
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}
