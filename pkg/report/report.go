// Package report renders a finalized interview into a human-readable
// markdown report. It consumes the interview package's public data model
// only.
package report

import (
	"fmt"
	"strings"

	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
)

const (
	maxReportQuotes              = 10
	maxInsightsPerCategory       = 5
	conversationPreviewMessages  = 4
	conversationPreviewMaxLength = 200
)

var phaseLabels = map[interview.TimelinePhase]string{
	interview.TimelineFirstThought:    "First Thought",
	interview.TimelineTrigger:         "Trigger Event",
	interview.TimelinePassiveLooking:  "Passive Looking",
	interview.TimelineActiveSearching: "Active Searching",
	interview.TimelineDecision:        "Decision",
	interview.TimelineAlmostStopped:   "Almost Stopped",
	interview.TimelineFirstUse:        "First Use",
}

var categoryLabels = map[interview.InsightCategory]string{
	interview.CategoryStrugglingMoment: "Struggling Moment",
	interview.CategoryPush:             "Push Factors",
	interview.CategoryPull:             "Pull Factors",
	interview.CategoryAnxiety:          "Anxiety Factors",
	interview.CategoryHabit:            "Habit Factors",
	interview.CategoryDietMedia:        "Media Diet",
	interview.CategoryDietNetwork:      "Professional Networks",
	interview.CategoryDietPhysical:     "Physical Touchpoints",
	interview.CategoryGeneral:          "General Insights",
}

// Generate renders a stored interview as a markdown report
func Generate(stored *interview.StoredInterview) string {
	var b strings.Builder
	data := stored.Data

	b.WriteString("# JTBD Interview Report\n\n")
	fmt.Fprintf(&b, "**Date:** %s\n", stored.CreatedAt.Format("2006-01-02"))

	name := stored.Config.IntervieweeName
	if name == "" {
		name = "Anonymous"
	}
	fmt.Fprintf(&b, "**Interviewee:** %s\n", name)

	if stored.Config.ProductContext != "" {
		fmt.Fprintf(&b, "**Product Context:** %s\n", stored.Config.ProductContext)
	}

	fmt.Fprintf(&b, "**Model Used:** %s\n", stored.Config.Model)
	if data != nil {
		fmt.Fprintf(&b, "**Status:** %s\n", data.Status)
	}
	b.WriteString("\n")

	writeJobStatement(&b, stored)

	if stored.Summary != nil && stored.Summary.StrugglingMoment != "" {
		b.WriteString("## Struggling Moment\n\n")
		fmt.Fprintf(&b, "%s\n\n", stored.Summary.StrugglingMoment)
	}

	if data == nil {
		return b.String()
	}

	writeTimeline(&b, data.SortedTimeline())
	writeForces(&b, data.Forces)
	writeDiet(&b, data.DietProfile)
	writeQuotes(&b, data.VerbatimQuotes)
	writeInsights(&b, data.Insights)
	writeConversation(&b, stored.Messages)

	return b.String()
}

func writeJobStatement(b *strings.Builder, stored *interview.StoredInterview) {
	b.WriteString("## Job Statement\n\n")

	switch {
	case stored.Summary != nil && stored.Summary.JobStatement != "":
		fmt.Fprintf(b, "> %s\n\n", stored.Summary.JobStatement)
	case stored.Data != nil && stored.Data.JobStatement != "":
		fmt.Fprintf(b, "> %s\n\n", stored.Data.JobStatement)
	default:
		b.WriteString("_Not yet synthesized_\n\n")
	}
}

func writeTimeline(b *strings.Builder, timeline []interview.TimelineEvent) {
	if len(timeline) == 0 {
		return
	}

	b.WriteString("## Decision Timeline\n\n")
	for _, event := range timeline {
		fmt.Fprintf(b, "### %s", formatPhase(event.Phase))
		if event.Date != "" {
			fmt.Fprintf(b, " (%s)", event.Date)
		}
		b.WriteString("\n\n")
		fmt.Fprintf(b, "%s\n", event.Details)
		if event.Context != "" {
			fmt.Fprintf(b, "\n_Context: %s_\n", event.Context)
		}
		b.WriteString("\n")
	}
}

func writeForces(b *strings.Builder, forces interview.ForcesOfProgress) {
	b.WriteString("## Forces of Progress\n\n")

	writeForceGroup(b, "Push (Away from current situation)", forces.Push)
	writeForceGroup(b, "Pull (Toward new solution)", forces.Pull)
	writeForceGroup(b, "Anxiety (Barriers to change)", forces.Anxiety)
	writeForceGroup(b, "Habit (Comfort with status quo)", forces.Habit)
}

func writeForceGroup(b *strings.Builder, heading string, forces []interview.Force) {
	if len(forces) == 0 {
		return
	}

	fmt.Fprintf(b, "### %s\n\n", heading)
	for _, force := range forces {
		fmt.Fprintf(b, "- %s (intensity: %d/10)\n", force.Description, force.Intensity)
		if force.Verbatim != "" {
			fmt.Fprintf(b, "  > \"%s\"\n", force.Verbatim)
		}
	}
	b.WriteString("\n")
}

func writeDiet(b *strings.Builder, diet interview.DietProfile) {
	hasDiet := len(diet.MediaConsumption.Podcasts) > 0 ||
		len(diet.MediaConsumption.Newsletters) > 0 ||
		len(diet.ProfessionalNetworks) > 0 ||
		len(diet.PhysicalTouchpoints) > 0

	if !hasDiet {
		return
	}

	b.WriteString("## Information Diet\n\n")

	if len(diet.MediaConsumption.Podcasts) > 0 {
		fmt.Fprintf(b, "**Podcasts:** %s\n\n", joinMediaNames(diet.MediaConsumption.Podcasts))
	}

	if len(diet.MediaConsumption.Newsletters) > 0 {
		fmt.Fprintf(b, "**Newsletters:** %s\n\n", joinMediaNames(diet.MediaConsumption.Newsletters))
	}

	if len(diet.ProfessionalNetworks) > 0 {
		names := make([]string, len(diet.ProfessionalNetworks))
		for i, network := range diet.ProfessionalNetworks {
			names[i] = fmt.Sprintf("%s (%s)", network.Name, network.Type)
		}
		fmt.Fprintf(b, "**Professional Networks:** %s\n\n", strings.Join(names, ", "))
	}

	if len(diet.PhysicalTouchpoints) > 0 {
		names := make([]string, len(diet.PhysicalTouchpoints))
		for i, touchpoint := range diet.PhysicalTouchpoints {
			if touchpoint.Name != "" {
				names[i] = touchpoint.Name
			} else {
				names[i] = touchpoint.Type
			}
		}
		fmt.Fprintf(b, "**Physical Touchpoints:** %s\n\n", strings.Join(names, ", "))
	}

	if len(diet.TrustedSources) > 0 {
		names := make([]string, len(diet.TrustedSources))
		for i, source := range diet.TrustedSources {
			names[i] = source.Name
		}
		fmt.Fprintf(b, "**Trusted Sources:** %s\n\n", strings.Join(names, ", "))
	}
}

func writeQuotes(b *strings.Builder, quotes []interview.VerbatimQuote) {
	if len(quotes) == 0 {
		return
	}

	b.WriteString("## Key Quotes\n\n")
	for i, quote := range quotes {
		if i == maxReportQuotes {
			break
		}
		fmt.Fprintf(b, "> \"%s\"\n\n", quote.Quote)
	}
}

func writeInsights(b *strings.Builder, insights []interview.Insight) {
	if len(insights) == 0 {
		return
	}

	b.WriteString("## Key Insights\n\n")

	// Group by category, preserving first-seen category order
	var order []interview.InsightCategory
	grouped := make(map[interview.InsightCategory][]interview.Insight)
	for _, insight := range insights {
		if _, seen := grouped[insight.Category]; !seen {
			order = append(order, insight.Category)
		}
		grouped[insight.Category] = append(grouped[insight.Category], insight)
	}

	for _, category := range order {
		fmt.Fprintf(b, "**%s:**\n", formatCategory(category))
		for i, insight := range grouped[category] {
			if i == maxInsightsPerCategory {
				break
			}
			fmt.Fprintf(b, "- %s\n", insight.Content)
		}
		b.WriteString("\n")
	}
}

func writeConversation(b *strings.Builder, messages []interview.Message) {
	b.WriteString("## Conversation Summary\n\n")
	fmt.Fprintf(b, "_%d messages exchanged_\n\n", len(messages))

	preview := messages
	if len(preview) > conversationPreviewMessages {
		preview = preview[:conversationPreviewMessages]
	}

	for _, msg := range preview {
		role := "Interviewer"
		if msg.Role == "user" {
			role = "Interviewee"
		}
		content := msg.Content
		if len(content) > conversationPreviewMaxLength {
			content = content[:conversationPreviewMaxLength] + "..."
		}
		fmt.Fprintf(b, "**%s:** %s\n\n", role, content)
	}

	if len(messages) > conversationPreviewMessages {
		fmt.Fprintf(b, "_... %d more messages ..._\n\n", len(messages)-conversationPreviewMessages)
	}
}

func joinMediaNames(items []interview.MediaItem) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return strings.Join(names, ", ")
}

func formatPhase(phase interview.TimelinePhase) string {
	if label, ok := phaseLabels[phase]; ok {
		return label
	}
	return string(phase)
}

func formatCategory(category interview.InsightCategory) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return string(category)
}
