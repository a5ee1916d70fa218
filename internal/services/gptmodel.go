package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickta/backend/internal/models"
	"gorm.io/gorm"
)

// GPTModelService manages per-course completion profiles. At most one profile
// per course is active; activating one deactivates its siblings.
type GPTModelService struct {
	db *gorm.DB
}

func NewGPTModelService(db *gorm.DB) *GPTModelService {
	return &GPTModelService{db: db}
}

// CreateGPTModelRequest carries a new model profile.
type CreateGPTModelRequest struct {
	CourseID         string  `json:"course_id" binding:"required"`
	ModelName        string  `json:"model_name" binding:"required"`
	Prompt           string  `json:"prompt"`
	Temperature      float32 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	TopP             float32 `json:"top_p"`
	N                int     `json:"n"`
	Stream           bool    `json:"stream"`
	Logprobs         int     `json:"logprobs"`
	PresencePenalty  float32 `json:"presence_penalty"`
	FrequencyPenalty float32 `json:"frequency_penalty"`
	BestOf           int     `json:"best_of"`
	IsActive         bool    `json:"is_active"`
}

// Create stores a new model profile for an existing course. When the profile
// is created active, sibling profiles of the course are deactivated first.
func (s *GPTModelService) Create(req *CreateGPTModelRequest) (*models.GPTModel, error) {
	var count int64
	if err := s.db.Model(&models.Course{}).Where("course_id = ?", req.CourseID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count courses: %w", err)
	}
	if count == 0 {
		return nil, ErrCourseNotFound
	}

	profile := models.GPTModel{
		ModelID:          uuid.New().String(),
		CourseID:         req.CourseID,
		ModelName:        req.ModelName,
		Prompt:           req.Prompt,
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		N:                req.N,
		Stream:           req.Stream,
		Logprobs:         req.Logprobs,
		PresencePenalty:  req.PresencePenalty,
		FrequencyPenalty: req.FrequencyPenalty,
		BestOf:           req.BestOf,
		IsActive:         req.IsActive,
	}
	if profile.N == 0 {
		profile.N = 1
	}
	if profile.BestOf == 0 {
		profile.BestOf = 1
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if profile.IsActive {
			if err := tx.Model(&models.GPTModel{}).
				Where("course_id = ?", profile.CourseID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create model profile: %w", err)
	}
	return &profile, nil
}

// GetActive returns the course's active model profile.
func (s *GPTModelService) GetActive(courseID string) (*models.GPTModel, error) {
	var profile models.GPTModel
	err := s.db.Where("course_id = ? AND is_active = ?", courseID, true).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveModel
		}
		return nil, fmt.Errorf("load active model: %w", err)
	}
	return &profile, nil
}

// List returns every model profile registered for a course.
func (s *GPTModelService) List(courseID string) ([]models.GPTModel, error) {
	var profiles []models.GPTModel
	if err := s.db.Where("course_id = ?", courseID).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("load model profiles: %w", err)
	}
	return profiles, nil
}

// Activate marks the given profile active and deactivates its course
// siblings.
func (s *GPTModelService) Activate(modelID string) (*models.GPTModel, error) {
	var profile models.GPTModel
	if err := s.db.Where("model_id = ?", modelID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, fmt.Errorf("load model profile: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GPTModel{}).
			Where("course_id = ?", profile.CourseID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.GPTModel{}).
			Where("model_id = ?", modelID).
			Update("is_active", true).Error
	})
	if err != nil {
		return nil, fmt.Errorf("activate model profile: %w", err)
	}
	profile.IsActive = true
	return &profile, nil
}
