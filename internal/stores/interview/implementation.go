// Package interview provides persistence for finished and in-flight
// interview sessions behind the engine's StoreInterface.
package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
)

// Store handles storage and retrieval of interviews using MySQL
type Store struct {
	db *gorm.DB
}

// NewStore creates a new interview store with MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	// Auto-migrate tables
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// migrate creates or updates the required database tables
func (s *Store) migrate() error {
	return s.db.AutoMigrate(&InterviewModel{})
}

// Save stores an interview, replacing any existing record with the same ID
func (s *Store) Save(ctx context.Context, stored *interview.StoredInterview) error {
	if stored.ID == "" {
		return fmt.Errorf("interview id cannot be empty")
	}

	model, err := toModel(stored)
	if err != nil {
		return err
	}

	var existing InterviewModel
	result := s.db.WithContext(ctx).Where("id = ?", stored.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
				return fmt.Errorf("failed to create interview: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to check existing interview: %w", result.Error)
	}

	if err := s.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
		"updated_at":       model.UpdatedAt,
		"completed_at":     model.CompletedAt,
		"interviewee_name": model.IntervieweeName,
		"product_context":  model.ProductContext,
		"status":           model.Status,
		"job_statement":    model.JobStatement,
		"insight_count":    model.InsightCount,
		"force_count":      model.ForceCount,
		"document":         model.Document,
	}).Error; err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}

	return nil
}

// Load retrieves an interview by ID. A missing ID returns nil without error.
func (s *Store) Load(ctx context.Context, id string) (*interview.StoredInterview, error) {
	if id == "" {
		return nil, fmt.Errorf("interview id cannot be empty")
	}

	var model InterviewModel
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load interview: %w", result.Error)
	}

	var stored interview.StoredInterview
	if err := json.Unmarshal([]byte(model.Document), &stored); err != nil {
		return nil, fmt.Errorf("failed to decode interview document: %w", err)
	}

	return &stored, nil
}

// List returns the list projection of all interviews, newest first
func (s *Store) List(ctx context.Context) ([]*interview.InterviewListItem, error) {
	var models []InterviewModel
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	items := make([]*interview.InterviewListItem, len(models))
	for i, model := range models {
		items[i] = &interview.InterviewListItem{
			ID:              model.ID,
			CreatedAt:       model.CreatedAt,
			CompletedAt:     model.CompletedAt,
			IntervieweeName: model.IntervieweeName,
			ProductContext:  model.ProductContext,
			Status:          model.Status,
			JobStatement:    model.JobStatement,
			InsightCount:    model.InsightCount,
			ForceCount:      model.ForceCount,
		}
	}

	return items, nil
}

// Delete removes an interview by ID. Deleting a missing ID returns false
// without error.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("interview id cannot be empty")
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&InterviewModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete interview: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}

// toModel builds the database model, denormalizing the list-view fields
func toModel(stored *interview.StoredInterview) (*InterviewModel, error) {
	document, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode interview document: %w", err)
	}

	model := &InterviewModel{
		ID:             stored.ID,
		CreatedAt:      stored.CreatedAt,
		UpdatedAt:      stored.UpdatedAt,
		CompletedAt:    stored.CompletedAt,
		ProductContext: stored.Config.ProductContext,
		Document:       string(document),
	}

	item := stored.ListItem()
	model.IntervieweeName = item.IntervieweeName
	model.Status = item.Status
	model.JobStatement = item.JobStatement
	model.InsightCount = item.InsightCount
	model.ForceCount = item.ForceCount

	return model, nil
}
