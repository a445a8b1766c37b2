package main

import (
	"flag"
	"log"
	"os"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/chenBenjamin97/punch-analyzer/pkg/api"
	"github.com/chenBenjamin97/punch-analyzer/pkg/service"
	"github.com/chenBenjamin97/punch-analyzer/pkg/store"
	"github.com/chenBenjamin97/punch-analyzer/pkg/utils"
	"github.com/chenBenjamin97/punch-analyzer/pkg/video"
	"github.com/spf13/viper"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	configPath := flag.String("config", "", "config file path (default ./config.yaml)")
	flag.Parse()

	if err := utils.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error: %v", err)
	}

	//first - create project's data root dir
	if err := os.MkdirAll(viper.GetString("directory.root"), 0766); err != nil {
		log.Printf("Error Creating '%s' directory, got '%v'", viper.GetString("directory.root"), err)
	}

	//create missing directories from config file
	for _, dir := range viper.GetStringMapString("directory") {
		if _, err := os.Stat(dir); err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0766); err != nil {
					log.Printf("Error Creating '%s' directory, got '%v'", dir, err)
				}
			}
		}
	}

	if viper.GetString("video.prod_format") == "" || viper.GetString("http.port") == "" || viper.GetString("database.dsn") == "" {
		log.Fatalf("Error: Missing critical configurations")
	}

	thresholds, err := utils.Thresholds()
	if err != nil {
		log.Fatalf("Error: Invalid analysis thresholds, got '%v'", err)
	}

	extractor, closeExtractor, err := video.ExtractorFromConfig()
	if err != nil {
		log.Fatalf("Error: Could not initialize pose model, got '%v'", err)
	}
	defer closeExtractor()

	results, err := store.Open(viper.GetString("database.dsn"))
	if err != nil {
		log.Fatalf("Error: Could not open results database, got '%v'", err)
	}
	defer results.Close()

	processor := service.NewProcessor(extractor, analysis.NewAnalyzer(thresholds), results, viper.GetString("directory.source"))

	r := api.SetRouter(processor, results)
	if err := r.Run(":" + viper.GetString("http.port")); err != nil {
		log.Fatalf("Error: Got '%v'", err)
	}
}
