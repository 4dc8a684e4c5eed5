package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noPhases(TimelinePhase) bool { return false }

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name          string
		utterance     string
		wantInsights  int
		wantQuotes    int
		wantForces    int
		wantTimeline  int
		wantCategory  InsightCategory
		forceCategory InsightCategory
	}{
		{
			name:         "struggling moment keyword",
			utterance:    "I was so frustrated with the old app",
			wantInsights: 1,
			wantQuotes:   1,
			wantCategory: CategoryStrugglingMoment,
		},
		{
			name:          "push keyword",
			utterance:     "I was just sick of it crashing every day",
			wantForces:    1,
			forceCategory: CategoryPush,
		},
		{
			name:          "pull keyword",
			utterance:     "It looked really promising in the demo",
			wantForces:    1,
			forceCategory: CategoryPull,
		},
		{
			name:          "anxiety keyword",
			utterance:     "I was worried it would be hard to set up",
			wantForces:    1,
			forceCategory: CategoryAnxiety,
		},
		{
			name:         "diet media keyword",
			utterance:    "I heard about it on a podcast",
			wantInsights: 1,
			wantCategory: CategoryDietMedia,
		},
		{
			name:         "diet network keyword",
			utterance:    "Someone in our Slack community recommended it",
			wantInsights: 1,
			wantCategory: CategoryDietNetwork,
		},
		{
			name:         "decision keyword",
			utterance:    "I finally ordered it on Amazon that night",
			wantTimeline: 1,
		},
		{
			name:         "first thought keyword",
			utterance:    "That's when I realized we needed something new",
			wantTimeline: 1,
		},
		{
			name:      "neutral utterance matches nothing",
			utterance: "It arrived two days later",
		},
		{
			name:      "empty utterance matches nothing",
			utterance: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := extractor.Extract(tt.utterance, noPhases)

			assert.Len(t, x.Insights, tt.wantInsights)
			assert.Len(t, x.Quotes, tt.wantQuotes)
			assert.Len(t, x.Forces, tt.wantForces)
			assert.Len(t, x.Timeline, tt.wantTimeline)

			if tt.wantInsights > 0 {
				assert.Equal(t, tt.wantCategory, x.Insights[0].Category)
			}
			if tt.wantForces > 0 {
				assert.Equal(t, tt.forceCategory, x.Forces[0].Category)
			}
		})
	}
}

func TestExtractor_Extract_MultipleCategories(t *testing.T) {
	extractor := NewExtractor()

	// "frustrated" hits struggling_moment and "tired of" hits push. Both
	// rules fire independently.
	x := extractor.Extract("I was so frustrated and tired of it not working", noPhases)

	require.Len(t, x.Insights, 1)
	require.Len(t, x.Quotes, 1)
	require.Len(t, x.Forces, 1)

	assert.Equal(t, CategoryStrugglingMoment, x.Insights[0].Category)
	assert.True(t, x.Insights[0].IsVerbatim)
	assert.Equal(t, CategoryPush, x.Forces[0].Category)
}

func TestExtractor_Extract_PreservesOriginalCasing(t *testing.T) {
	extractor := NewExtractor()

	utterance := "I was SO Frustrated with the scheduling"
	x := extractor.Extract(utterance, noPhases)

	require.Len(t, x.Insights, 1)
	assert.Equal(t, utterance, x.Insights[0].Content)
	require.Len(t, x.Quotes, 1)
	assert.Equal(t, utterance, x.Quotes[0].Quote)
}

func TestExtractor_Extract_ForceIntensities(t *testing.T) {
	extractor := NewExtractor()

	push := extractor.Extract("sick of doing this by hand", noPhases)
	require.Len(t, push.Forces, 1)
	assert.Equal(t, 7, push.Forces[0].Force.Intensity)

	pull := extractor.Extract("the reviews looked promising", noPhases)
	require.Len(t, pull.Forces, 1)
	assert.Equal(t, 7, pull.Forces[0].Force.Intensity)

	anxiety := extractor.Extract("honestly I almost didn't go through with it", noPhases)
	require.Len(t, anxiety.Forces, 1)
	assert.Equal(t, 6, anxiety.Forces[0].Force.Intensity)
}

func TestExtractor_Extract_TimelinePhaseAlreadyCaptured(t *testing.T) {
	extractor := NewExtractor()

	hasDecision := func(phase TimelinePhase) bool {
		return phase == TimelineDecision
	}

	// Second mention of purchase language is dropped once the decision
	// event exists
	x := extractor.Extract("I bought the upgraded version too", hasDecision)
	assert.Empty(t, x.Timeline)

	// Other phases are still open
	x = extractor.Extract("I realized the spreadsheet wasn't enough", hasDecision)
	require.Len(t, x.Timeline, 1)
	assert.Equal(t, TimelineFirstThought, x.Timeline[0].Phase)
}

func TestExtractor_AddKeywords(t *testing.T) {
	extractor := NewExtractor()

	require.NoError(t, extractor.AddKeywords("push", []string{"waste of money"}))

	x := extractor.Extract("it felt like a waste of money every month", noPhases)
	require.Len(t, x.Forces, 1)
	assert.Equal(t, CategoryPush, x.Forces[0].Category)
}

func TestExtractor_AddKeywords_UnknownCategory(t *testing.T) {
	extractor := NewExtractor()

	err := extractor.AddKeywords("nonsense", []string{"anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extraction category")
}

func TestExtractor_Categories(t *testing.T) {
	categories := NewExtractor().Categories()

	assert.Contains(t, categories, "struggling_moment")
	assert.Contains(t, categories, "push")
	assert.Contains(t, categories, "pull")
	assert.Contains(t, categories, "anxiety")
	assert.Contains(t, categories, "timeline_decision")
	assert.Contains(t, categories, "timeline_first_thought")
}

func TestExtraction_IsEmpty(t *testing.T) {
	var x Extraction
	assert.True(t, x.IsEmpty())

	x.Quotes = append(x.Quotes, VerbatimQuote{Quote: "anything"})
	assert.False(t, x.IsEmpty())
}
