package interview

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fixed intensities for auto-captured forces. Keyword matching carries no
// magnitude signal, so captures get a flat rating per category.
const (
	pushIntensity    = 7
	pullIntensity    = 7
	anxietyIntensity = 6
)

const autoCapturedContext = "Auto-captured from conversation"

// Extraction is the set of additions produced from one utterance. The
// extractor never mutates session state; the engine applies these.
type Extraction struct {
	Insights []Insight
	Quotes   []VerbatimQuote
	Forces   []ForceAddition
	Timeline []TimelineEvent
}

// ForceAddition pairs a captured force with the category list it belongs to
type ForceAddition struct {
	Category InsightCategory
	Force    Force
}

// IsEmpty reports whether the extraction produced no additions. This is the
// normal case for most utterances, not an error.
func (x *Extraction) IsEmpty() bool {
	return len(x.Insights) == 0 && len(x.Quotes) == 0 && len(x.Forces) == 0 && len(x.Timeline) == 0
}

// rule is one entry in the classification table: a keyword set and the
// entity constructor to run when any keyword matches. Rules are evaluated
// independently; no match blocks another.
type rule struct {
	category string
	keywords []string
	apply    func(x *Extraction, utterance string, hasPhase func(TimelinePhase) bool, now time.Time)
}

// Extractor classifies utterances into structured entities via substring
// matching against per-category keyword lists. No stemming, no NLP.
type Extractor struct {
	rules []rule
}

// NewExtractor returns an extractor with the default rule table
func NewExtractor() *Extractor {
	return &Extractor{rules: defaultRules()}
}

// Extract classifies a single user utterance. Matching runs against the
// lower-cased text; captured entities preserve the original casing.
// hasPhase reports which timeline phases are already populated, so timeline
// rules can keep the first capture and drop later ones.
func (e *Extractor) Extract(utterance string, hasPhase func(TimelinePhase) bool) Extraction {
	var x Extraction
	input := strings.ToLower(utterance)
	now := time.Now()

	for _, r := range e.rules {
		if containsAny(input, r.keywords) {
			r.apply(&x, utterance, hasPhase, now)
		}
	}

	return x
}

// AddKeywords extends the keyword list for an existing category. Unknown
// categories are rejected so config typos surface immediately.
func (e *Extractor) AddKeywords(category string, keywords []string) error {
	for i := range e.rules {
		if e.rules[i].category == category {
			e.rules[i].keywords = append(e.rules[i].keywords, keywords...)
			return nil
		}
	}
	return fmt.Errorf("unknown extraction category '%s'", category)
}

// Categories returns the category names in the rule table
func (e *Extractor) Categories() []string {
	categories := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		categories = append(categories, r.category)
	}
	return categories
}

func containsAny(input string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

func newInsight(content string, category InsightCategory, isVerbatim bool, now time.Time) Insight {
	return Insight{
		ID:         "insight_" + uuid.NewString(),
		Content:    content,
		Category:   category,
		IsVerbatim: isVerbatim,
		CapturedAt: now,
	}
}

func defaultRules() []rule {
	return []rule{
		{
			category: "struggling_moment",
			keywords: []string{
				"frustrated", "problem", "struggle", "wasn't working",
				"fed up", "couldn't", "hard time", "difficult",
				"trouble", "crying", "yell", "meltdown",
				"gave up", "stressed",
			},
			apply: func(x *Extraction, utterance string, _ func(TimelinePhase) bool, now time.Time) {
				x.Insights = append(x.Insights, newInsight(utterance, CategoryStrugglingMoment, true, now))
				x.Quotes = append(x.Quotes, VerbatimQuote{
					Quote:      utterance,
					Context:    "struggling moment",
					Category:   CategoryStrugglingMoment,
					CapturedAt: now,
				})
			},
		},
		{
			category: "push",
			keywords: []string{
				"annoyed", "tired of", "couldn't stand", "hate",
				"sick of", "enough", "not working", "broken",
			},
			apply: func(x *Extraction, utterance string, _ func(TimelinePhase) bool, now time.Time) {
				x.Forces = append(x.Forces, ForceAddition{
					Category: CategoryPush,
					Force: Force{
						Description: utterance,
						Intensity:   pushIntensity,
						Verbatim:    utterance,
						CapturedAt:  now,
					},
				})
			},
		},
		{
			category: "pull",
			keywords: []string{
				"attracted", "wanted", "excited about", "loved the idea",
				"looked good", "promising", "hope", "help her",
				"help him", "would work",
			},
			apply: func(x *Extraction, utterance string, _ func(TimelinePhase) bool, now time.Time) {
				x.Forces = append(x.Forces, ForceAddition{
					Category: CategoryPull,
					Force: Force{
						Description: utterance,
						Intensity:   pullIntensity,
						Verbatim:    utterance,
						CapturedAt:  now,
					},
				})
			},
		},
		{
			category: "anxiety",
			keywords: []string{"worried", "afraid", "hesitated", "almost didn't"},
			apply: func(x *Extraction, utterance string, _ func(TimelinePhase) bool, now time.Time) {
				x.Forces = append(x.Forces, ForceAddition{
					Category: CategoryAnxiety,
					Force: Force{
						Description: utterance,
						Intensity:   anxietyIntensity,
						Verbatim:    utterance,
						CapturedAt:  now,
					},
				})
			},
		},
		{
			category: "diet_media",
			keywords: []string{"podcast", "newsletter", "read", "listen"},
			apply: func(x *Extraction, utterance string, _ func(TimelinePhase) bool, now time.Time) {
				x.Insights = append(x.Insights, newInsight(utterance, CategoryDietMedia, false, now))
			},
		},
		{
			category: "diet_network",
			keywords: []string{"community", "slack", "group", "conference"},
			apply: func(x *Extraction, utterance string, _ func(TimelinePhase) bool, now time.Time) {
				x.Insights = append(x.Insights, newInsight(utterance, CategoryDietNetwork, false, now))
			},
		},
		{
			category: "timeline_decision",
			keywords: []string{"bought", "ordered", "purchased", "amazon", "decided", "picked"},
			apply: func(x *Extraction, utterance string, hasPhase func(TimelinePhase) bool, now time.Time) {
				// First capture wins; later purchase language is ignored
				if hasPhase(TimelineDecision) {
					return
				}
				x.Timeline = append(x.Timeline, TimelineEvent{
					Phase:      TimelineDecision,
					Details:    utterance,
					Context:    autoCapturedContext,
					CapturedAt: now,
				})
			},
		},
		{
			category: "timeline_first_thought",
			keywords: []string{"first time", "realized", "noticed", "started to think"},
			apply: func(x *Extraction, utterance string, hasPhase func(TimelinePhase) bool, now time.Time) {
				if hasPhase(TimelineFirstThought) {
					return
				}
				x.Timeline = append(x.Timeline, TimelineEvent{
					Phase:      TimelineFirstThought,
					Details:    utterance,
					Context:    autoCapturedContext,
					CapturedAt: now,
				})
			},
		},
	}
}
