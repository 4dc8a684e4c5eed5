package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StoredConfig is the configuration an interview was started with,
// persisted alongside its data
type StoredConfig struct {
	ProductContext  string `json:"product_context,omitempty"`
	IntervieweeName string `json:"interviewee_name,omitempty"`
	Model           string `json:"model"`
}

// StoredInterview is the full document persisted when an interview
// completes: the data model, the derived summary, the start configuration,
// and the message log as seen by the boundary layer.
type StoredInterview struct {
	ID          string         `json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Config      StoredConfig   `json:"config"`
	Data        *InterviewData `json:"data"`
	Messages    []Message      `json:"messages"`
	Summary     *Summary       `json:"summary,omitempty"`
}

// InterviewListItem is the lightweight projection returned by List
type InterviewListItem struct {
	ID              string     `json:"id"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	IntervieweeName string     `json:"interviewee_name"`
	ProductContext  string     `json:"product_context,omitempty"`
	Status          string     `json:"status"`
	JobStatement    string     `json:"job_statement,omitempty"`
	InsightCount    int        `json:"insight_count"`
	ForceCount      int        `json:"force_count"`
}

// StoreInterface is the persistence contract consumed by the boundary
// layer. Documents are opaque to the store; a missing ID is a miss, not an
// error: Load returns nil and Delete returns false.
type StoreInterface interface {
	Save(ctx context.Context, interview *StoredInterview) error
	Load(ctx context.Context, id string) (*StoredInterview, error)
	List(ctx context.Context) ([]*InterviewListItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// GenerateInterviewID returns a unique, sortable interview identifier
func GenerateInterviewID() string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("interview_%s_%s", timestamp, suffix)
}

// ListItem derives the list projection for a stored interview
func (s *StoredInterview) ListItem() *InterviewListItem {
	item := &InterviewListItem{
		ID:             s.ID,
		CreatedAt:      s.CreatedAt,
		CompletedAt:    s.CompletedAt,
		ProductContext: s.Config.ProductContext,
	}

	item.IntervieweeName = s.Config.IntervieweeName
	if item.IntervieweeName == "" {
		item.IntervieweeName = "Anonymous"
	}

	if s.Data != nil {
		item.Status = string(s.Data.Status)
		item.InsightCount = len(s.Data.Insights)
		item.ForceCount = s.Data.Forces.Count()
	}

	if s.Summary != nil {
		item.JobStatement = s.Summary.JobStatement
	}

	return item
}
