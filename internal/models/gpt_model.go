package models

import "time"

// GPTModel is a per-course completion profile: which engine to use, the course
// preamble injected at the start of a fresh conversation, and the generation
// parameters passed through to the completion service. At most one profile per
// course is active at a time; activating one deactivates its siblings.
type GPTModel struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	ModelID          string    `gorm:"uniqueIndex;size:50;not null" json:"model_id"`
	CourseID         string    `gorm:"index;size:50;not null" json:"course_id"`
	ModelName        string    `gorm:"size:100;not null" json:"model_name"`
	Prompt           string    `gorm:"type:text" json:"prompt"`
	Temperature      float32   `gorm:"default:0.9" json:"temperature"`
	MaxTokens        int       `gorm:"default:1000" json:"max_tokens"`
	TopP             float32   `gorm:"default:1" json:"top_p"`
	N                int       `gorm:"default:1" json:"n"`
	Stream           bool      `gorm:"default:false" json:"stream"`
	Logprobs         int       `gorm:"default:0" json:"logprobs"`
	PresencePenalty  float32   `gorm:"default:0.6" json:"presence_penalty"`
	FrequencyPenalty float32   `gorm:"default:0" json:"frequency_penalty"`
	BestOf           int       `gorm:"default:1" json:"best_of"`
	IsActive         bool      `gorm:"default:false" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (GPTModel) TableName() string { return "gpt_models" }
