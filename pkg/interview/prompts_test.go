package interview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSystemInstruction(t *testing.T) {
	plain := BuildSystemInstruction("")
	assert.Contains(t, plain, "Jobs to Be Done interview")
	assert.NotContains(t, plain, "INTERVIEW CONTEXT")

	contextual := BuildSystemInstruction("a standing desk purchase")
	assert.Contains(t, contextual, "INTERVIEW CONTEXT")
	assert.Contains(t, contextual, "a standing desk purchase")
	assert.True(t, strings.HasPrefix(contextual, plain))

	// Deterministic for the same input
	assert.Equal(t, contextual, BuildSystemInstruction("a standing desk purchase"))
}

func TestBuildOpeningPrompt(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		contains    []string
		notContains []string
	}{
		{
			name:        "bare config",
			config:      Config{},
			contains:    []string{"warm greeting", "ONE simple opening question"},
			notContains: []string{"name is", "experience with"},
		},
		{
			name:     "with name",
			config:   Config{IntervieweeName: "Dana"},
			contains: []string{"The interviewee's name is Dana."},
		},
		{
			name:     "with product context",
			config:   Config{ProductContext: "switching CRMs"},
			contains: []string{"Ask about their experience with switching CRMs."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildOpeningPrompt(tt.config)
			for _, want := range tt.contains {
				assert.Contains(t, prompt, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, prompt, unwanted)
			}
		})
	}
}

func TestBuildTurnPrompt_WindowsHistory(t *testing.T) {
	var history []Message
	for i := 0; i < 14; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, Message{
			Role:      role,
			Content:   fmt.Sprintf("turn %02d", i),
			Timestamp: time.Now(),
		})
	}

	prompt := BuildTurnPrompt(history, "latest answer", "", PhaseWarmup)

	// Only the last 10 turns appear
	for i := 0; i < 4; i++ {
		assert.NotContains(t, prompt, fmt.Sprintf("turn %02d", i))
	}
	for i := 4; i < 14; i++ {
		assert.Contains(t, prompt, fmt.Sprintf("turn %02d", i))
	}

	// Oldest first within the window
	require.Less(t, strings.Index(prompt, "turn 04"), strings.Index(prompt, "turn 13"))
}

func TestBuildTurnPrompt_Labels(t *testing.T) {
	history := []Message{
		{Role: "assistant", Content: "what happened next"},
		{Role: "user", Content: "the battery died"},
	}

	prompt := BuildTurnPrompt(history, "the battery died", "", PhaseDecisionDeepDive)

	assert.Contains(t, prompt, "Interviewer: what happened next")
	assert.Contains(t, prompt, "Interviewee: the battery died")
	assert.Contains(t, prompt, `The interviewee just said: "the battery died"`)
	assert.Contains(t, prompt, "Ask ONE follow-up question")
}

func TestBuildTurnPrompt_ProductContextReminder(t *testing.T) {
	prompt := BuildTurnPrompt(nil, "hello", "buying a road bike", PhaseWarmup)
	assert.Contains(t, prompt, "REMEMBER: This interview is about buying a road bike.")

	prompt = BuildTurnPrompt(nil, "hello", "", PhaseWarmup)
	assert.NotContains(t, prompt, "REMEMBER:")
}

func TestBuildTurnPrompt_PhaseGuidance(t *testing.T) {
	prompt := BuildTurnPrompt(nil, "hello", "", PhaseForcesMapping)
	assert.Contains(t, prompt, string(PhaseForcesMapping))
	assert.Contains(t, prompt, PhaseGuidance(PhaseForcesMapping))
}

func TestBuildSynthesisPrompt(t *testing.T) {
	prompt := BuildSynthesisPrompt()
	assert.Contains(t, prompt, "Job Statement")
	assert.Contains(t, prompt, "struggling moment")
	assert.Contains(t, prompt, "recommendations")
}
