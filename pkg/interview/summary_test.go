package interview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJobStatement(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "statement present",
			response: "Here is the job statement. When I juggle three tools, I want one place for everything, so I can stop losing context. More text follows.",
			want:     "When I juggle three tools, I want one place for everything, so I can stop losing context.",
		},
		{
			name:     "case insensitive match",
			response: "when I review my week, I want a clear picture, so I can plan better.",
			want:     "when I review my week, I want a clear picture, so I can plan better.",
		},
		{
			name:     "no statement falls back",
			response: "The interviewee described a hiring decision but no clear statement emerged.",
			want:     "Job statement pending synthesis",
		},
		{
			name:     "empty response falls back",
			response: "",
			want:     "Job statement pending synthesis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJobStatement(tt.response))
		})
	}
}

func TestExtractStrugglingMoment(t *testing.T) {
	insights := []Insight{
		{Content: "heard about it on a podcast", Category: CategoryDietMedia},
		{Content: "the export kept failing at month end", Category: CategoryStrugglingMoment},
		{Content: "another struggle later", Category: CategoryStrugglingMoment},
	}

	assert.Equal(t, "the export kept failing at month end", extractStrugglingMoment(insights))
	assert.Equal(t, "Struggling moment pending identification", extractStrugglingMoment(nil))
}

func TestExtractRecommendations(t *testing.T) {
	response := `Summary of the interview.

Recommendations:
1. Sponsor the podcasts this segment already listens to
2. Short
- Target month-end reporting pain in landing page copy
* Offer a migration path from spreadsheets
• Seed the product in operations Slack communities
- Also a valid fifth recommendation here
- This sixth one should be cut by the cap`

	recommendations := extractRecommendations(response)

	assert.Len(t, recommendations, 5)
	assert.Equal(t, "Sponsor the podcasts this segment already listens to", recommendations[0])
	assert.NotContains(t, recommendations, "Short")
	assert.NotContains(t, recommendations, "This sixth one should be cut by the cap")
}

func TestExtractRecommendations_NoBullets(t *testing.T) {
	recommendations := extractRecommendations("A plain paragraph with no list structure at all.")
	assert.Empty(t, recommendations)
}

func TestKeyInsights(t *testing.T) {
	insights := []Insight{
		{Content: "uncategorized note", Category: CategoryGeneral},
		{Content: "struggling with exports", Category: CategoryStrugglingMoment},
		{Content: "found via newsletter", Category: CategoryDietMedia},
	}

	contents := keyInsights(insights)

	assert.Equal(t, []string{"struggling with exports", "found via newsletter"}, contents)
}

func TestKeyInsights_Cap(t *testing.T) {
	var insights []Insight
	for i := 0; i < 15; i++ {
		insights = append(insights, Insight{
			Content:  fmt.Sprintf("insight %d", i),
			Category: CategoryPush,
		})
	}

	assert.Len(t, keyInsights(insights), 10)
}

func TestTopQuotes(t *testing.T) {
	var quotes []VerbatimQuote
	for i := 0; i < 8; i++ {
		quotes = append(quotes, VerbatimQuote{Quote: fmt.Sprintf("quote %d", i)})
	}

	top := topQuotes(quotes)

	assert.Len(t, top, 5)
	assert.Equal(t, "quote 0", top[0].Quote)

	// Returned slice is a copy
	top[0].Quote = "mutated"
	assert.Equal(t, "quote 0", quotes[0].Quote)
}
