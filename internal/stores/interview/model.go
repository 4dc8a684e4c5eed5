package interview

import (
	"time"
)

// InterviewModel represents the database model for completed interviews.
// The full session is stored as a JSON document; list-view fields are
// denormalized into their own columns so List never deserializes documents.
type InterviewModel struct {
	ID          string     `json:"id" gorm:"primaryKey;column:id;size:64"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
	CompletedAt *time.Time `json:"completed_at" gorm:"column:completed_at"`

	IntervieweeName string `json:"interviewee_name" gorm:"column:interviewee_name;size:255"`
	ProductContext  string `json:"product_context" gorm:"column:product_context;size:500"`
	Status          string `json:"status" gorm:"column:status;size:32;index"`
	JobStatement    string `json:"job_statement" gorm:"column:job_statement;size:1000"`
	InsightCount    int    `json:"insight_count" gorm:"column:insight_count"`
	ForceCount      int    `json:"force_count" gorm:"column:force_count"`

	Document string `json:"document" gorm:"column:document;type:longtext;not null"`
}

// TableName sets the table name for GORM
func (InterviewModel) TableName() string {
	return "interviews"
}
