package interview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
)

// The in-memory store and the MySQL store implement the same contract; the
// tests run against the in-memory implementation.
var _ interview.StoreInterface = (*InMemoryStore)(nil)
var _ interview.StoreInterface = (*Store)(nil)

func newStoredInterview(id string, createdAt time.Time) *interview.StoredInterview {
	data := interview.NewInterviewData()
	data.Status = interview.StatusComplete
	data.Insights = append(data.Insights, interview.Insight{
		ID:       "insight_1",
		Content:  "frustrated with manual exports",
		Category: interview.CategoryStrugglingMoment,
	})
	data.Forces.Push = append(data.Forces.Push, interview.Force{
		Description: "frustrated with manual exports",
		Intensity:   7,
	})

	completed := createdAt.Add(30 * time.Minute)

	return &interview.StoredInterview{
		ID:          id,
		CreatedAt:   createdAt,
		UpdatedAt:   completed,
		CompletedAt: &completed,
		Config: interview.StoredConfig{
			IntervieweeName: "Dana",
			ProductContext:  "a reporting tool",
			Model:           "claude-sonnet-4-20250514",
		},
		Data: data,
		Messages: []interview.Message{
			{Role: "assistant", Content: "What did you buy?", Timestamp: createdAt},
			{Role: "user", Content: "a reporting tool", Timestamp: createdAt},
		},
		Summary: &interview.Summary{
			JobStatement: "When I close the month, I want reports generated for me, so I can skip the manual exports.",
			GeneratedAt:  completed,
		},
	}
}

func TestInMemoryStore_SaveAndLoad(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	stored := newStoredInterview("interview_20260101_120000_abc123", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.Save(ctx, stored))

	loaded, err := store.Load(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, stored.ID, loaded.ID)
	assert.Equal(t, "Dana", loaded.Config.IntervieweeName)
	assert.Equal(t, stored.Summary.JobStatement, loaded.Summary.JobStatement)
	require.NotNil(t, loaded.Data)
	assert.Len(t, loaded.Data.Insights, 1)
	assert.Len(t, loaded.Messages, 2)

	// The stored document is decoupled from the caller's struct
	stored.Config.IntervieweeName = "tampered"
	reloaded, err := store.Load(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", reloaded.Config.IntervieweeName)
}

func TestInMemoryStore_Save_Overwrites(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	stored := newStoredInterview("interview_1", time.Now())
	require.NoError(t, store.Save(ctx, stored))

	stored.Summary.JobStatement = "revised statement"
	require.NoError(t, store.Save(ctx, stored))

	loaded, err := store.Load(ctx, "interview_1")
	require.NoError(t, err)
	assert.Equal(t, "revised statement", loaded.Summary.JobStatement)

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestInMemoryStore_Save_EmptyID(t *testing.T) {
	store := NewInMemoryStore()
	err := store.Save(context.Background(), &interview.StoredInterview{})
	assert.Error(t, err)
}

func TestInMemoryStore_Load_Miss(t *testing.T) {
	store := NewInMemoryStore()

	loaded, err := store.Load(context.Background(), "interview_missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestInMemoryStore_List(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Save(ctx, newStoredInterview("interview_older", base.Add(-time.Hour))))
	require.NoError(t, store.Save(ctx, newStoredInterview("interview_newer", base)))

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Newest first
	assert.Equal(t, "interview_newer", items[0].ID)
	assert.Equal(t, "interview_older", items[1].ID)

	assert.Equal(t, "Dana", items[0].IntervieweeName)
	assert.Equal(t, 1, items[0].InsightCount)
	assert.Equal(t, 1, items[0].ForceCount)
	assert.Equal(t, string(interview.StatusComplete), items[0].Status)
}

func TestInMemoryStore_List_Empty(t *testing.T) {
	store := NewInMemoryStore()

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newStoredInterview("interview_1", time.Now())))

	deleted, err := store.Delete(ctx, "interview_1")
	require.NoError(t, err)
	assert.True(t, deleted)

	loaded, err := store.Load(ctx, "interview_1")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Second delete is a miss, not an error
	deleted, err = store.Delete(ctx, "interview_1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestToModel(t *testing.T) {
	stored := newStoredInterview("interview_1", time.Now())

	model, err := toModel(stored)
	require.NoError(t, err)

	assert.Equal(t, "interview_1", model.ID)
	assert.Equal(t, "Dana", model.IntervieweeName)
	assert.Equal(t, "a reporting tool", model.ProductContext)
	assert.Equal(t, string(interview.StatusComplete), model.Status)
	assert.Equal(t, 1, model.InsightCount)
	assert.Equal(t, 1, model.ForceCount)
	assert.Contains(t, model.Document, stored.Summary.JobStatement)
}

func TestToModel_AnonymousInterviewee(t *testing.T) {
	stored := newStoredInterview("interview_1", time.Now())
	stored.Config.IntervieweeName = ""

	model, err := toModel(stored)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", model.IntervieweeName)
}
