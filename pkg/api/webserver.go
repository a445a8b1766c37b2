package api

import (
	"context"
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/chenBenjamin97/punch-analyzer/pkg/pose"
	"github.com/chenBenjamin97/punch-analyzer/pkg/store"
	"github.com/chenBenjamin97/punch-analyzer/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

//Processor analyzes uploaded videos and raw keypoints
type Processor interface {
	Process(videoName string)
	AnalyzeClip(ctx context.Context, name string, clip pose.Clip) (analysis.AnalysisResult, error)
}

//Results reads stored analysis results
type Results interface {
	Latest(ctx context.Context, videoName string) (store.Result, error)
	List(ctx context.Context) ([]store.Result, error)
}

//keypointsFrame is one frame of keypoints in the COCO order, normalized coordinates, (0,0) for an undetected joint
type keypointsFrame struct {
	TimestampMs float64      `json:"timestamp_ms"`
	Keypoints   [][2]float64 `json:"keypoints"`
}

type analyzeKeypointsRequest struct {
	Name   string           `json:"name"`
	FPS    float64          `json:"fps"`
	Frames []keypointsFrame `json:"frames" binding:"required"`
}

func SetRouter(processor Processor, results Results) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	//serve html pages to client
	if staticPath := viper.GetString("frontend.static-files-path"); staticPath != "" {
		r.Static("/client", staticPath)
		r.StaticFile("/", path.Join(staticPath, "index.html"))
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiRoutes := r.Group("/api")

	apiRoutes.GET("/ReadyVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.ready")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/UserUploadsVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/Play", func(ctx *gin.Context) {
		videoName := ctx.Query("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		analyzed := ctx.Query("analyzed")
		if analyzed != "true" && analyzed != "false" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		var videoPath string
		if analyzed == "true" {
			videoPath = filepath.Join(viper.GetString("directory.ready"), utils.StemName(videoName)+"."+viper.GetString("video.prod_format"))
		} else {
			videoPath = filepath.Join(viper.GetString("directory.source"), filepath.Base(videoName))
		}

		if _, err := os.Stat(videoPath); err != nil {
			if os.IsNotExist(err) {
				ctx.Status(http.StatusNotFound)
			} else {
				ctx.Status(http.StatusInternalServerError)
			}
			return
		}

		ctx.Header("Content-Type", "video/mp4")
		http.ServeFile(ctx.Writer, ctx.Request, videoPath)
	})

	apiRoutes.POST("/Upload", func(ctx *gin.Context) {
		file, fHeader, err := ctx.Request.FormFile("video")
		if err != nil {
			ctx.Status(http.StatusBadRequest)
			return
		}
		defer file.Close()

		fileName := filepath.Base(fHeader.Filename)

		if existNames, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		} else if utils.InSlice(fileName, existNames) {
			ctx.Status(http.StatusNotAcceptable)
			return
		}

		log.Printf("api/Upload: Recived new file: name - '%s', size - %v Bytes", fileName, fHeader.Size)

		fileBytes, err := ioutil.ReadAll(file)
		if err != nil {
			log.Printf("api/Upload: Could not read request's body, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		srcFilePath := filepath.Join(viper.GetString("directory.source"), fileName)

		if err = ioutil.WriteFile(srcFilePath, fileBytes, 0444); err != nil {
			log.Printf("api/Upload: Could not write '%s' file, got '%v'", srcFilePath, err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		go processor.Process(fileName)

		ctx.JSON(http.StatusOK, gin.H{"name": fileName})
	})

	apiRoutes.GET("/Result", func(ctx *gin.Context) {
		videoName := ctx.Query("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		res, err := results.Latest(ctx.Request.Context(), videoName)
		if errors.Is(err, store.ErrNotFound) {
			ctx.Status(http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("api/Result: Error, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusOK, res)
	})

	apiRoutes.GET("/Results", func(ctx *gin.Context) {
		list, err := results.List(ctx.Request.Context())
		if err != nil {
			log.Printf("api/Results: Error, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusOK, list)
	})

	apiRoutes.POST("/AnalyzeKeypoints", func(ctx *gin.Context) {
		var req analyzeKeypointsRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		clip := pose.Clip{
			FPS:    analysis.NormalizeFPS(req.FPS),
			Frames: make([]analysis.KeypointSet, 0, len(req.Frames)),
		}
		for _, f := range req.Frames {
			clip.Frames = append(clip.Frames, pose.FromXY(f.TimestampMs, f.Keypoints))
		}

		res, err := processor.AnalyzeClip(ctx.Request.Context(), req.Name, clip)
		if err != nil {
			log.Printf("api/AnalyzeKeypoints: Error, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusOK, res)
	})

	return r
}
