package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tekelala/jtbd-interview-agent/pkg/provider"
)

// Interviewer conducts one Jobs to Be Done interview. It owns the
// conversation history and the structured data model, builds prompts,
// invokes the completion provider, and classifies each exchange.
//
// All operations on one Interviewer must be invoked sequentially by its
// owner; the engine defines no internal locking.
type Interviewer struct {
	llm       provider.CompletionProvider
	extractor *Extractor

	conversationHistory []Message
	data                *InterviewData
	currentPhase        Phase
	productContext      string
}

// Option configures an Interviewer
type Option func(*Interviewer)

// WithExtractor replaces the default keyword rule table
func WithExtractor(extractor *Extractor) Option {
	return func(i *Interviewer) {
		i.extractor = extractor
	}
}

// NewInterviewer creates an interviewer backed by the given completion
// provider
func NewInterviewer(llm provider.CompletionProvider, opts ...Option) *Interviewer {
	i := &Interviewer{
		llm:          llm,
		extractor:    NewExtractor(),
		data:         NewInterviewData(),
		currentPhase: PhaseSetup,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Start begins a new interview. It resets the conversation and data model,
// moves the phase to warmup, and returns the model's opening greeting.
// A provider failure aborts the start entirely; there is no retry.
func (i *Interviewer) Start(ctx context.Context, config Config) (string, error) {
	i.conversationHistory = []Message{}
	i.data = NewInterviewData()
	i.currentPhase = PhaseWarmup
	i.productContext = config.ProductContext

	if config.IntervieweeName != "" {
		i.data.Interviewee.Name = config.IntervieweeName
	}

	opening, err := i.query(ctx, BuildOpeningPrompt(config))
	if err != nil {
		return "", err
	}

	return opening, nil
}

// SendMessage records a user turn, gets the model's reply, and runs entity
// extraction over the user text.
//
// The user turn is appended before the provider call and is not rolled back
// on failure: a failed SendMessage leaves the session with one more user
// turn than assistant turns, and the caller retries by calling SendMessage
// again. Blank input is the boundary layer's concern, not this method's.
func (i *Interviewer) SendMessage(ctx context.Context, userMessage string) (string, error) {
	i.conversationHistory = append(i.conversationHistory, Message{
		Role:      "user",
		Content:   userMessage,
		Timestamp: time.Now(),
	})

	prompt := BuildTurnPrompt(i.conversationHistory, userMessage, i.productContext, i.currentPhase)

	response, err := i.query(ctx, prompt)
	if err != nil {
		return "", err
	}

	i.conversationHistory = append(i.conversationHistory, Message{
		Role:      "assistant",
		Content:   response,
		Timestamp: time.Now(),
	})

	i.apply(i.extractor.Extract(userMessage, i.data.HasTimelinePhase))
	i.data.UpdatedAt = time.Now()

	return response, nil
}

// EndInterview finalizes the session. It marks the interview complete,
// issues one synthesis call to the provider, and derives the immutable
// summary from the response plus the accumulated data model. It makes no
// destructive state changes before the provider call, so a failed call can
// be retried. Persistence is the caller's responsibility.
func (i *Interviewer) EndInterview(ctx context.Context) (*Summary, error) {
	i.data.Status = StatusComplete

	response, err := i.query(ctx, BuildSynthesisPrompt())
	if err != nil {
		return nil, err
	}

	jobStatement := i.data.JobStatement
	if jobStatement == "" {
		jobStatement = extractJobStatement(response)
	}

	snapshot := i.data.Clone()

	return &Summary{
		Interviewee:       snapshot.Interviewee,
		JobStatement:      jobStatement,
		StrugglingMoment:  extractStrugglingMoment(snapshot.Insights),
		Timeline:          snapshot.SortedTimeline(),
		Forces:            snapshot.Forces,
		DietProfile:       snapshot.DietProfile,
		KeyInsights:       keyInsights(snapshot.Insights),
		TopVerbatimQuotes: topQuotes(snapshot.VerbatimQuotes),
		Recommendations:   extractRecommendations(response),
		GeneratedAt:       time.Now(),
	}, nil
}

// query sends the system instruction, the recent history window, and the
// prompt as a final user turn to the completion provider
func (i *Interviewer) query(ctx context.Context, prompt string) (string, error) {
	window := i.conversationHistory
	if len(window) > HistoryWindow {
		window = window[len(window)-HistoryWindow:]
	}

	turns := make([]provider.Turn, 0, len(window)+1)
	for _, msg := range window {
		turns = append(turns, provider.Turn{Role: msg.Role, Content: msg.Content})
	}
	turns = append(turns, provider.Turn{Role: "user", Content: prompt})

	return i.llm.Complete(ctx, BuildSystemInstruction(i.productContext), turns)
}

// apply merges extracted additions into the data model. Timeline events are
// re-checked against populated phases so the at-most-one-event-per-phase
// invariant holds even if the extraction was computed against stale state.
func (i *Interviewer) apply(x Extraction) {
	i.data.Insights = append(i.data.Insights, x.Insights...)
	i.data.VerbatimQuotes = append(i.data.VerbatimQuotes, x.Quotes...)

	for _, addition := range x.Forces {
		switch addition.Category {
		case CategoryPush:
			i.data.Forces.Push = append(i.data.Forces.Push, addition.Force)
		case CategoryPull:
			i.data.Forces.Pull = append(i.data.Forces.Pull, addition.Force)
		case CategoryAnxiety:
			i.data.Forces.Anxiety = append(i.data.Forces.Anxiety, addition.Force)
		case CategoryHabit:
			i.data.Forces.Habit = append(i.data.Forces.Habit, addition.Force)
		}
	}

	for _, event := range x.Timeline {
		if !i.data.HasTimelinePhase(event.Phase) {
			i.data.Timeline = append(i.data.Timeline, event)
		}
	}
}

// GetInterviewData returns a deep copy of the current data model
func (i *Interviewer) GetInterviewData() *InterviewData {
	return i.data.Clone()
}

// GetConversationHistory returns a copy of the conversation so far
func (i *Interviewer) GetConversationHistory() []Message {
	return append([]Message{}, i.conversationHistory...)
}

// ExportToJSON serializes the full data model as indented JSON
func (i *Interviewer) ExportToJSON() (string, error) {
	b, err := json.MarshalIndent(i.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to export interview data: %w", err)
	}
	return string(b), nil
}

// Phase returns the current interview phase
func (i *Interviewer) Phase() Phase {
	return i.currentPhase
}

// SetPhase advances the interview phase. The phase is advisory metadata for
// drivers and prompt guidance; it does not gate which operations are
// callable.
func (i *Interviewer) SetPhase(phase Phase) {
	i.currentPhase = phase
}

// Model returns the model identifier of the underlying provider
func (i *Interviewer) Model() string {
	return i.llm.Model()
}
