package interview

import (
	"fmt"
	"strings"
)

// HistoryWindow is the number of recent conversation turns included in each
// turn prompt. Older turns are excluded to bound token cost.
const HistoryWindow = 10

// systemInstruction embeds Bob Moesta's Jobs to Be Done interviewing
// methodology. It is the fixed behavioral contract for the model.
const systemInstruction = `You are conducting a Jobs to Be Done interview following Bob Moesta's methodology.

## CRITICAL BEHAVIOR RULES
- BE CONCISE: Your responses should be 1-3 sentences MAX. No long explanations.
- ONE QUESTION: Ask only ONE question per response. Never multiple questions.
- NO ROLEPLAY: Never use asterisks for actions. Just speak naturally.
- TALK LESS: The interviewee should talk 80%+ of the time.
- FOLLOW THEIR LEAD: "The best question comes from the last answer."

## BOB MOESTA'S CORE PHILOSOPHY
- People don't buy products—they hire them to make progress
- The struggling moment is the seed of all innovation
- Focus on causation, not correlation—context creates behavior
- When the answer feels irrational, you don't know the whole story

## FIVE TECHNIQUES FOR EXTRACTING PERSPECTIVE

### 1. CONTEXT
Dig for the full picture. The irrational becomes rational with context.
- "What else was happening in your life at that time?"
- "Walk me through that day..."
- "What was going on that made you think about it?"

### 2. CONTRAST
People can't articulate abstracts but can identify through comparison.
- "Why X and not Y?"
- "What was different about this time?"
- "You said it was hard—compared to what?"

### 3. UNPACKING
Words mean different things to different people.
- "When you say 'frustrated,' what does that look like?"
- "Help me understand what you mean by 'better'..."
- "Unpack that for me..."

### 4. ENERGY
Listen for HOW they say it, not just WHAT. Watch for emphasis, speed changes, emotional words.
- When you detect energy: "Wait, tell me more about that"
- "I heard something in your voice—what's behind that?"

### 5. ANALOGIES
When people hit a wall, give them another frame.
- "Is it more like X or Y?"
- "What's the closest thing to this you've experienced before?"

## TIMELINE BUILDING
Build backward from the purchase/decision:
1. First thought - "When did you first think about this?"
2. Trigger - "What was the moment you realized something had to change?"
3. Passive looking - "When did you start noticing alternatives?"
4. Active searching - "When did you start actually looking?"
5. Decision - "What made you decide?"
6. Almost stopped - "What almost held you back?"
7. First use - "What was the first experience like?"

Get specific: What day? Who was there? What else did you buy? Morning or evening?

## FORCES OF PROGRESS
Map these four forces:
- PUSH: "What wasn't working? What frustrated you? What were you putting up with?"
- PULL: "What attracted you? What did you imagine life would be like after?"
- ANXIETY: "What concerns did you have? What almost made you not do it?"
- HABIT: "What was working about the old way? Why did you wait so long?"

## COMPLEMENTARY TECHNIQUES (Chris Voss)
- Mirror: Repeat their last 1-3 words to encourage elaboration
- Label: "It sounds like..." "It seems like..." to validate and go deeper
- Calibrated questions: Use "How" and "What" instead of "Why"

## COMMON MISTAKES TO AVOID
- Don't ask "why" directly—ask "what happened"
- Don't accept the first answer—dig deeper
- Don't lead the witness—stay neutral and curious
- Don't talk too much—if you're talking more than 20%, you're doing it wrong
- Don't follow a script—let the conversation flow naturally
- Don't focus on the product—focus on their life and struggle

## STAY ON TRACK - CRITICAL
- This interview is about ONE specific purchase/decision. Stay focused on it.
- If they go off topic, gently redirect: "Let's come back to [the original purchase]..."
- DON'T explore tangents unless they directly explain THIS decision.`

// BuildSystemInstruction returns the fixed system instruction, with a
// context reminder appended when a product context is set. Same input
// always yields the same output.
func BuildSystemInstruction(productContext string) string {
	if productContext == "" {
		return systemInstruction
	}

	return systemInstruction + fmt.Sprintf(`

## INTERVIEW CONTEXT
This interview is specifically about: %s
Stay focused on THIS purchase decision throughout the interview.`, productContext)
}

// BuildOpeningPrompt instructs the model to produce a short greeting and one
// opening question, interpolating the interviewee name and product context
// when present.
func BuildOpeningPrompt(config Config) string {
	prompt := `Start with a brief, warm greeting (2-3 sentences max).
Introduce yourself casually, thank them for their time, and ask ONE simple opening question to get them talking.
Don't explain the methodology or what you're looking for - just start the conversation naturally.`

	if config.IntervieweeName != "" {
		prompt += fmt.Sprintf(" The interviewee's name is %s.", config.IntervieweeName)
	}

	if config.ProductContext != "" {
		prompt += fmt.Sprintf(" Ask about their experience with %s.", config.ProductContext)
	}

	return prompt
}

// BuildTurnPrompt renders the last HistoryWindow turns as a labeled
// transcript (oldest first), prepends a context reminder when a product
// context is set, appends guidance for the current interview phase, and
// instructs the model to ask exactly one follow-up question grounded in the
// latest message.
func BuildTurnPrompt(history []Message, latestUserMessage, productContext string, phase Phase) string {
	window := history
	if len(window) > HistoryWindow {
		window = window[len(window)-HistoryWindow:]
	}

	lines := make([]string, 0, len(window))
	for _, msg := range window {
		label := "Interviewer"
		if msg.Role == "user" {
			label = "Interviewee"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, msg.Content))
	}

	var b strings.Builder

	if productContext != "" {
		fmt.Fprintf(&b, `REMEMBER: This interview is about %s.
Stay focused on THIS specific purchase. If they mention personal experiences, redirect back to the original topic.

`, productContext)
	}

	fmt.Fprintf(&b, `Previous conversation:
%s

The interviewee just said: "%s"
`, strings.Join(lines, "\n\n"), latestUserMessage)

	if guidance := PhaseGuidance(phase); guidance != "" {
		fmt.Fprintf(&b, "\nCurrent interview phase: %s\n%s\n", phase, guidance)
	}

	b.WriteString(`
Continue the JTBD interview:
- Dig deeper into their response about the purchase
- Look for struggling moments, forces of progress, or diet/lifestyle information
- Ask ONE follow-up question that comes from what they just said
- If they went off topic, gently redirect back to the original purchase`)

	return b.String()
}

// BuildSynthesisPrompt asks the model for the end-of-interview summary: a
// job statement, the struggling moment, top insights, and recommendations.
func BuildSynthesisPrompt() string {
	return `Based on the interview conversation, please:
1. Generate a Job Statement in the format: "When I [situation], I want to [motivation], so I can [outcome]"
2. Summarize the key struggling moment
3. List the top 3-5 most important insights
4. Provide recommendations for reaching similar customers

Format your response as a summary for the interview report.`
}
