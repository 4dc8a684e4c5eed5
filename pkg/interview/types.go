package interview

import (
	"sort"
	"time"
)

// Config holds the options for starting a new interview
type Config struct {
	ProductContext  string `json:"product_context,omitempty"`
	IntervieweeName string `json:"interviewee_name,omitempty"`
	SessionID       string `json:"session_id,omitempty"`
}

// Phase represents the current stage of the interview conversation
type Phase string

const (
	PhaseSetup            Phase = "setup"
	PhaseWarmup           Phase = "warmup"
	PhaseDecisionDeepDive Phase = "decision_deep_dive"
	PhaseForcesMapping    Phase = "forces_mapping"
	PhaseDietInquiry      Phase = "diet_inquiry"
	PhaseSynthesis        Phase = "synthesis"
	PhaseComplete         Phase = "complete"
)

// Phases lists every interview phase in conversational order
var Phases = []Phase{
	PhaseSetup,
	PhaseWarmup,
	PhaseDecisionDeepDive,
	PhaseForcesMapping,
	PhaseDietInquiry,
	PhaseSynthesis,
	PhaseComplete,
}

// ValidPhase reports whether the given phase is a known interview phase
func ValidPhase(phase Phase) bool {
	for _, p := range Phases {
		if p == phase {
			return true
		}
	}
	return false
}

// Status represents the lifecycle state of an interview
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusComplete   Status = "complete"
	StatusAbandoned  Status = "abandoned"
)

// Message is a single turn in the conversation
type Message struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TimelinePhase is a stage in the decision journey, distinct from the
// interview Phase. The order of TimelinePhases defines display sorting.
type TimelinePhase string

const (
	TimelineFirstThought    TimelinePhase = "first_thought"
	TimelineTrigger         TimelinePhase = "trigger"
	TimelinePassiveLooking  TimelinePhase = "passive_looking"
	TimelineActiveSearching TimelinePhase = "active_searching"
	TimelineDecision        TimelinePhase = "decision"
	TimelineAlmostStopped   TimelinePhase = "almost_stopped"
	TimelineFirstUse        TimelinePhase = "first_use"
)

// TimelinePhaseOrder is the canonical ordering used when sorting timelines
var TimelinePhaseOrder = []TimelinePhase{
	TimelineFirstThought,
	TimelineTrigger,
	TimelinePassiveLooking,
	TimelineActiveSearching,
	TimelineDecision,
	TimelineAlmostStopped,
	TimelineFirstUse,
}

// TimelineEvent is a captured point in the decision journey. The timeline
// holds at most one event per phase; first capture wins.
type TimelineEvent struct {
	Phase      TimelinePhase `json:"phase"`
	Date       string        `json:"date,omitempty"`
	Trigger    string        `json:"trigger,omitempty"`
	Context    string        `json:"context"`
	Details    string        `json:"details"`
	CapturedAt time.Time     `json:"captured_at"`
}

// Force is one motivator or inhibitor of the change decision
type Force struct {
	Description string    `json:"description"`
	Intensity   int       `json:"intensity"` // 1-10
	Verbatim    string    `json:"verbatim,omitempty"`
	CapturedAt  time.Time `json:"captured_at"`
}

// ForcesOfProgress groups forces into the four canonical categories
type ForcesOfProgress struct {
	Push    []Force `json:"push"`
	Pull    []Force `json:"pull"`
	Anxiety []Force `json:"anxiety"`
	Habit   []Force `json:"habit"`
}

// Count returns the total number of captured forces across all categories
func (f *ForcesOfProgress) Count() int {
	return len(f.Push) + len(f.Pull) + len(f.Anxiety) + len(f.Habit)
}

// InsightCategory labels what kind of observation an insight captures
type InsightCategory string

const (
	CategoryStrugglingMoment InsightCategory = "struggling_moment"
	CategoryPush             InsightCategory = "push"
	CategoryPull             InsightCategory = "pull"
	CategoryAnxiety          InsightCategory = "anxiety"
	CategoryHabit            InsightCategory = "habit"
	CategoryDietMedia        InsightCategory = "diet_media"
	CategoryDietNetwork      InsightCategory = "diet_network"
	CategoryDietPhysical     InsightCategory = "diet_physical"
	CategoryGeneral          InsightCategory = "general"
)

// Insight is a single captured observation from the conversation
type Insight struct {
	ID         string          `json:"id"`
	Content    string          `json:"content"`
	Category   InsightCategory `json:"category"`
	IsVerbatim bool            `json:"is_verbatim"`
	CapturedAt time.Time       `json:"captured_at"`
}

// VerbatimQuote is an utterance stored unmodified because it matched a
// significant category
type VerbatimQuote struct {
	Quote      string          `json:"quote"`
	Context    string          `json:"context"`
	Category   InsightCategory `json:"category"`
	CapturedAt time.Time       `json:"captured_at"`
}

// IntervieweeInfo describes the person being interviewed
type IntervieweeInfo struct {
	Name     string `json:"name"`
	Context  string `json:"context"`
	Role     string `json:"role,omitempty"`
	Industry string `json:"industry,omitempty"`
}

// MediaItem is a single media source in the interviewee's diet
type MediaItem struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency,omitempty"` // daily, weekly, monthly, occasionally
	Notes     string `json:"notes,omitempty"`
}

// SocialMediaItem is a media item tied to a specific platform
type SocialMediaItem struct {
	MediaItem
	Platform string `json:"platform"` // twitter, linkedin, instagram, tiktok, facebook, reddit, other
}

// ProfessionalNetwork is a community or group the interviewee belongs to
type ProfessionalNetwork struct {
	Name      string `json:"name"`
	Type      string `json:"type"` // slack, discord, linkedin_group, conference, meetup, association, other
	Frequency string `json:"frequency,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// PhysicalTouchpoint is a physical place where the interviewee encounters
// new ideas or products
type PhysicalTouchpoint struct {
	Type      string `json:"type"` // coffee_shop, gym, coworking, retail, restaurant, commute, other
	Name      string `json:"name,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Context   string `json:"context,omitempty"`
}

// TrustedSource is a person or outlet whose recommendations carry weight
type TrustedSource struct {
	Name   string `json:"name"`
	Type   string `json:"type"` // person, publication, community, brand, other
	Domain string `json:"domain,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// DailyRoutine captures media habits across the slots of a typical day
type DailyRoutine struct {
	Morning string `json:"morning,omitempty"`
	Commute string `json:"commute,omitempty"`
	Workday string `json:"workday,omitempty"`
	Evening string `json:"evening,omitempty"`
	Weekend string `json:"weekend,omitempty"`
}

// MediaConsumption categorizes the interviewee's media sources
type MediaConsumption struct {
	Podcasts        []MediaItem       `json:"podcasts"`
	Newsletters     []MediaItem       `json:"newsletters"`
	SocialMedia     []SocialMediaItem `json:"social_media"`
	Publications    []MediaItem       `json:"publications"`
	YoutubeChannels []MediaItem       `json:"youtube_channels"`
	Influencers     []MediaItem       `json:"influencers"`
}

// DietProfile describes how to reach people like the interviewee
type DietProfile struct {
	DailyRoutine         DailyRoutine          `json:"daily_routine"`
	MediaConsumption     MediaConsumption      `json:"media_consumption"`
	ProfessionalNetworks []ProfessionalNetwork `json:"professional_networks"`
	PhysicalTouchpoints  []PhysicalTouchpoint  `json:"physical_touchpoints"`
	TrustedSources       []TrustedSource       `json:"trusted_sources"`
	DiscoveryChannels    []string              `json:"discovery_channels"`
}

// InterviewData is the root aggregate owned by one Interviewer instance
type InterviewData struct {
	Interviewee    IntervieweeInfo  `json:"interviewee"`
	Timeline       []TimelineEvent  `json:"timeline"`
	Forces         ForcesOfProgress `json:"forces"`
	DietProfile    DietProfile      `json:"diet_profile"`
	Insights       []Insight        `json:"insights"`
	VerbatimQuotes []VerbatimQuote  `json:"verbatim_quotes"`
	JobStatement   string           `json:"job_statement,omitempty"`
	Status         Status           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Summary is the immutable projection produced when an interview ends
type Summary struct {
	Interviewee       IntervieweeInfo  `json:"interviewee"`
	JobStatement      string           `json:"job_statement"`
	StrugglingMoment  string           `json:"struggling_moment"`
	Timeline          []TimelineEvent  `json:"timeline"`
	Forces            ForcesOfProgress `json:"forces"`
	DietProfile       DietProfile      `json:"diet_profile"`
	KeyInsights       []string         `json:"key_insights"`
	TopVerbatimQuotes []VerbatimQuote  `json:"top_verbatim_quotes"`
	Recommendations   []string         `json:"recommendations"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

// NewInterviewData returns an empty data model with all collections
// initialized, so JSON exports always contain the full structure
func NewInterviewData() *InterviewData {
	now := time.Now()
	return &InterviewData{
		Interviewee: IntervieweeInfo{},
		Timeline:    []TimelineEvent{},
		Forces: ForcesOfProgress{
			Push:    []Force{},
			Pull:    []Force{},
			Anxiety: []Force{},
			Habit:   []Force{},
		},
		DietProfile: DietProfile{
			MediaConsumption: MediaConsumption{
				Podcasts:        []MediaItem{},
				Newsletters:     []MediaItem{},
				SocialMedia:     []SocialMediaItem{},
				Publications:    []MediaItem{},
				YoutubeChannels: []MediaItem{},
				Influencers:     []MediaItem{},
			},
			ProfessionalNetworks: []ProfessionalNetwork{},
			PhysicalTouchpoints:  []PhysicalTouchpoint{},
			TrustedSources:       []TrustedSource{},
			DiscoveryChannels:    []string{},
		},
		Insights:       []Insight{},
		VerbatimQuotes: []VerbatimQuote{},
		Status:         StatusInProgress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a deep copy of the data model so callers cannot mutate the
// engine's internal state through returned references
func (d *InterviewData) Clone() *InterviewData {
	out := *d
	out.Timeline = append([]TimelineEvent{}, d.Timeline...)
	out.Forces = ForcesOfProgress{
		Push:    append([]Force{}, d.Forces.Push...),
		Pull:    append([]Force{}, d.Forces.Pull...),
		Anxiety: append([]Force{}, d.Forces.Anxiety...),
		Habit:   append([]Force{}, d.Forces.Habit...),
	}
	out.DietProfile = d.DietProfile.clone()
	out.Insights = append([]Insight{}, d.Insights...)
	out.VerbatimQuotes = append([]VerbatimQuote{}, d.VerbatimQuotes...)
	return &out
}

func (p DietProfile) clone() DietProfile {
	out := p
	out.MediaConsumption = MediaConsumption{
		Podcasts:        append([]MediaItem{}, p.MediaConsumption.Podcasts...),
		Newsletters:     append([]MediaItem{}, p.MediaConsumption.Newsletters...),
		SocialMedia:     append([]SocialMediaItem{}, p.MediaConsumption.SocialMedia...),
		Publications:    append([]MediaItem{}, p.MediaConsumption.Publications...),
		YoutubeChannels: append([]MediaItem{}, p.MediaConsumption.YoutubeChannels...),
		Influencers:     append([]MediaItem{}, p.MediaConsumption.Influencers...),
	}
	out.ProfessionalNetworks = append([]ProfessionalNetwork{}, p.ProfessionalNetworks...)
	out.PhysicalTouchpoints = append([]PhysicalTouchpoint{}, p.PhysicalTouchpoints...)
	out.TrustedSources = append([]TrustedSource{}, p.TrustedSources...)
	out.DiscoveryChannels = append([]string{}, p.DiscoveryChannels...)
	return out
}

// HasTimelinePhase reports whether an event is already captured for a phase
func (d *InterviewData) HasTimelinePhase(phase TimelinePhase) bool {
	for _, event := range d.Timeline {
		if event.Phase == phase {
			return true
		}
	}
	return false
}

// SortedTimeline returns the timeline ordered by the canonical phase order.
// Phases missing from the canonical list sort after all known phases.
func (d *InterviewData) SortedTimeline() []TimelineEvent {
	sorted := append([]TimelineEvent{}, d.Timeline...)
	index := func(phase TimelinePhase) int {
		for i, p := range TimelinePhaseOrder {
			if p == phase {
				return i
			}
		}
		return len(TimelinePhaseOrder)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return index(sorted[i].Phase) < index(sorted[j].Phase)
	})
	return sorted
}
