package interview

import "strings"

// Question banks for each interview phase. These feed the phase guidance
// appended to turn prompts and are surfaced by the CLI as interviewer hints.

// WarmupQuestions open the conversation and build rapport
var WarmupQuestions = []string{
	"Tell me a little about yourself - what do you do, and what brought you here today?",
	"I'd love to start by just understanding your context a bit.",
}

// TimelineQuestions probe each stage of the decision journey
var TimelineQuestions = map[TimelinePhase][]string{
	TimelineFirstThought: {
		"When did you first think about making a change or solving this problem?",
		"What was going on in your life at that moment?",
		"Take me back to that day - where were you, what were you doing?",
	},
	TimelineTrigger: {
		"What was the moment that made you think 'something has to change'?",
		"Was there a specific event or frustration that pushed you?",
		"What finally tipped you over the edge?",
	},
	TimelinePassiveLooking: {
		"After that, when did you start noticing alternatives?",
		"Were you actively searching, or did things just start appearing?",
		"What were you putting up with while you were 'thinking about it'?",
	},
	TimelineActiveSearching: {
		"When did you shift to actually looking for a solution?",
		"What did your research process look like?",
		"Where did you go first?",
	},
	TimelineDecision: {
		"Walk me through the moment you decided to go with the solution.",
		"What day was it? Where were you? Who was with you?",
		"What made you say 'this is the one'?",
	},
	TimelineAlmostStopped: {
		"Was there a moment you almost didn't do it?",
		"What concerns or hesitations did you have?",
		"What almost got in the way?",
	},
	TimelineFirstUse: {
		"What was your first experience like?",
		"Did it match what you expected?",
		"What surprised you?",
	},
}

// ForceQuestions probe each of the four forces of progress
var ForceQuestions = map[InsightCategory][]string{
	CategoryPush: {
		"What wasn't working about the way things were?",
		"What frustrated you the most?",
		"What were you putting up with that you shouldn't have been?",
		"What made the status quo finally unacceptable?",
	},
	CategoryPull: {
		"What did you imagine your life would be like after making this change?",
		"What got you excited about this particular option?",
		"What was the promise that drew you in?",
		"What did you hope to achieve or feel?",
	},
	CategoryAnxiety: {
		"What made you nervous about making this change?",
		"What questions did you have that you needed answered?",
		"What almost stopped you from going through with it?",
		"What's the worst that could have happened?",
	},
	CategoryHabit: {
		"What was actually working about the old situation?",
		"What will you miss, or what do you miss?",
		"Why did you wait as long as you did?",
		"What made the old way 'good enough' for so long?",
	},
}

// SynthesisQuestions close out the interview
var SynthesisQuestions = []string{
	"What's something you realized during our conversation that you hadn't thought about before?",
	"Is there anything important about your experience that I didn't ask about?",
	"If someone else was in your shoes, what advice would you give them?",
}

// PhaseGuidance returns a short instruction block for the current interview
// phase, built from the question banks. Phases without specific guidance
// return an empty string.
func PhaseGuidance(phase Phase) string {
	switch phase {
	case PhaseWarmup:
		return guidance("Build rapport before digging in. Useful openers:", WarmupQuestions)
	case PhaseDecisionDeepDive:
		return guidance("Reconstruct the decision timeline, one stage at a time. Useful probes:",
			append(append([]string{}, TimelineQuestions[TimelineFirstThought]...),
				TimelineQuestions[TimelineDecision]...))
	case PhaseForcesMapping:
		return guidance("Map the four forces of progress. Useful probes:",
			append(append([]string{}, ForceQuestions[CategoryPush][:2]...),
				ForceQuestions[CategoryPull][:2]...))
	case PhaseDietInquiry:
		return guidance("Explore their information diet and discovery channels. Useful probes:",
			DietQuestionSample())
	case PhaseSynthesis:
		return guidance("Validate the job statement and close out. Useful probes:", SynthesisQuestions)
	default:
		return ""
	}
}

func guidance(header string, questions []string) string {
	var b strings.Builder
	b.WriteString(header)
	for _, q := range questions {
		b.WriteString("\n- ")
		b.WriteString(q)
	}
	return b.String()
}
