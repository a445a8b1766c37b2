package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chenBenjamin97/punch-analyzer/pkg/analysis"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//ErrNotFound is returned when no result is stored for a video
var ErrNotFound = errors.New("result not found")

//Result is one stored punch analysis
type Result struct {
	ID        string             `gorm:"primaryKey" json:"id"`
	VideoName string             `gorm:"index" json:"video_name"`
	Score     int                `json:"score"`
	Feedback  []string           `gorm:"serializer:json" json:"feedback"`
	Metrics   map[string]float64 `gorm:"serializer:json" json:"metrics"`
	CreatedAt time.Time          `json:"created_at"`
}

//AnalysisResult returns the stored result in its original form
func (r Result) AnalysisResult() analysis.AnalysisResult {
	return analysis.AnalysisResult{Score: r.Score, Feedback: r.Feedback, Metrics: r.Metrics}
}

//Store persists analysis results in sqlite
type Store struct {
	db *gorm.DB
}

//Open opens (or creates) the sqlite database at dsn and migrates its schema. Use ":memory:" for a throwaway database.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}
	//sqlite allows a single writer, and every ":memory:" connection is a separate database
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Result{}); err != nil {
		return nil, fmt.Errorf("store.Open: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

//Save stores the result of analyzing given video
func (s *Store) Save(ctx context.Context, videoName string, res analysis.AnalysisResult) (Result, error) {
	r := Result{
		ID:        uuid.NewString(),
		VideoName: videoName,
		Score:     res.Score,
		Feedback:  res.Feedback,
		Metrics:   res.Metrics,
		CreatedAt: time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return Result{}, fmt.Errorf("Save: %w", err)
	}

	return r, nil
}

//Latest returns the newest result of given video
func (s *Store) Latest(ctx context.Context, videoName string) (Result, error) {
	var r Result
	err := s.db.WithContext(ctx).Where("video_name = ?", videoName).Order("created_at DESC").First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Result{}, ErrNotFound
	}
	if err != nil {
		return Result{}, fmt.Errorf("Latest: %w", err)
	}

	return r, nil
}

//List returns all results, newest first
func (s *Store) List(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0)
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	return results, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
