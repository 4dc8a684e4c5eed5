package interview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterviewData(t *testing.T) {
	data := NewInterviewData()

	assert.Equal(t, StatusInProgress, data.Status)
	assert.False(t, data.CreatedAt.IsZero())

	// All collections serialize as empty arrays, not null
	b, err := json.Marshal(data)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "null")
}

func TestInterviewData_Clone(t *testing.T) {
	data := NewInterviewData()
	data.Insights = append(data.Insights, Insight{ID: "insight_1", Content: "original"})
	data.Timeline = append(data.Timeline, TimelineEvent{Phase: TimelineDecision, Details: "bought it"})
	data.Forces.Push = append(data.Forces.Push, Force{Description: "push", Intensity: 7})
	data.DietProfile.MediaConsumption.Podcasts = append(data.DietProfile.MediaConsumption.Podcasts, MediaItem{Name: "some show"})

	clone := data.Clone()
	clone.Insights[0].Content = "tampered"
	clone.Timeline[0].Details = "tampered"
	clone.Forces.Push[0].Description = "tampered"
	clone.DietProfile.MediaConsumption.Podcasts[0].Name = "tampered"
	clone.Status = StatusAbandoned

	assert.Equal(t, "original", data.Insights[0].Content)
	assert.Equal(t, "bought it", data.Timeline[0].Details)
	assert.Equal(t, "push", data.Forces.Push[0].Description)
	assert.Equal(t, "some show", data.DietProfile.MediaConsumption.Podcasts[0].Name)
	assert.Equal(t, StatusInProgress, data.Status)
}

func TestInterviewData_HasTimelinePhase(t *testing.T) {
	data := NewInterviewData()
	assert.False(t, data.HasTimelinePhase(TimelineDecision))

	data.Timeline = append(data.Timeline, TimelineEvent{Phase: TimelineDecision})
	assert.True(t, data.HasTimelinePhase(TimelineDecision))
	assert.False(t, data.HasTimelinePhase(TimelineFirstThought))
}

func TestInterviewData_SortedTimeline(t *testing.T) {
	data := NewInterviewData()
	data.Timeline = []TimelineEvent{
		{Phase: TimelineDecision, Details: "decided"},
		{Phase: TimelineFirstThought, Details: "first thought"},
		{Phase: TimelineTrigger, Details: "trigger"},
	}

	sorted := data.SortedTimeline()

	require.Len(t, sorted, 3)
	assert.Equal(t, TimelineFirstThought, sorted[0].Phase)
	assert.Equal(t, TimelineTrigger, sorted[1].Phase)
	assert.Equal(t, TimelineDecision, sorted[2].Phase)

	// Original capture order is untouched
	assert.Equal(t, TimelineDecision, data.Timeline[0].Phase)
}

func TestInterviewData_SortedTimeline_UnknownPhaseLast(t *testing.T) {
	data := NewInterviewData()
	data.Timeline = []TimelineEvent{
		{Phase: TimelinePhase("custom_phase")},
		{Phase: TimelineFirstUse},
	}

	sorted := data.SortedTimeline()

	require.Len(t, sorted, 2)
	assert.Equal(t, TimelineFirstUse, sorted[0].Phase)
	assert.Equal(t, TimelinePhase("custom_phase"), sorted[1].Phase)
}

func TestForcesOfProgress_Count(t *testing.T) {
	forces := ForcesOfProgress{
		Push:    []Force{{}, {}},
		Anxiety: []Force{{}},
	}
	assert.Equal(t, 3, forces.Count())
}

func TestGenerateInterviewID(t *testing.T) {
	first := GenerateInterviewID()
	second := GenerateInterviewID()

	assert.Regexp(t, `^interview_\d{8}_\d{6}_[0-9a-f]{6}$`, first)
	assert.NotEqual(t, first, second)
}

func TestStoredInterview_ListItem(t *testing.T) {
	data := NewInterviewData()
	data.Insights = append(data.Insights, Insight{}, Insight{})
	data.Forces.Pull = append(data.Forces.Pull, Force{})

	stored := &StoredInterview{
		ID:     "interview_20260101_120000_abc123",
		Config: StoredConfig{ProductContext: "a CRM switch"},
		Data:   data,
		Summary: &Summary{
			JobStatement: "When I lose a lead, I want the handoff tracked, so I can follow up in time.",
		},
	}

	item := stored.ListItem()

	assert.Equal(t, stored.ID, item.ID)
	assert.Equal(t, "Anonymous", item.IntervieweeName)
	assert.Equal(t, "a CRM switch", item.ProductContext)
	assert.Equal(t, 2, item.InsightCount)
	assert.Equal(t, 1, item.ForceCount)
	assert.Equal(t, stored.Summary.JobStatement, item.JobStatement)

	stored.Config.IntervieweeName = "Ryo"
	assert.Equal(t, "Ryo", stored.ListItem().IntervieweeName)
}
