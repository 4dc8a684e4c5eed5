package interview

// Diet inquiry question banks, used to understand how to reach similar
// people through their media consumption, professional networks, and
// physical touchpoints.

// DailyRoutineQuestions walk through the slots of a typical day
var DailyRoutineQuestions = map[string]string{
	"morning": "Walk me through your typical morning - from when you wake up to when you start work. What do you read, listen to, or scroll through?",
	"commute": "During your commute or transition time, what do you typically consume? Podcasts? Music? Audiobooks?",
	"workday": "Throughout your workday, how do you take breaks? Do you read anything, check any sites?",
	"evening": "How do you wind down in the evening? What's your media diet look like after work?",
	"weekend": "Weekends - how are they different? Any different reading or listening habits?",
}

// MediaConsumptionQuestions probe each media category
var MediaConsumptionQuestions = map[string][]string{
	"podcasts": {
		"Are you a podcast listener? Which ones actually make it into your rotation?",
		"What makes you subscribe to a podcast versus just listening once?",
	},
	"newsletters": {
		"Which newsletters actually get read, not just archived in your inbox?",
		"Are there any you'd genuinely miss if they stopped?",
	},
	"social_media": {
		"Which social platforms do you actually spend time on for professional insights?",
		"Who do you follow that consistently provides value?",
	},
	"publications": {
		"What publications or blogs do you trust and read regularly?",
		"What about YouTube channels or video content?",
	},
	"influencers": {
		"Who are the thought leaders you actually pay attention to in this space?",
		"Is there anyone whose recommendations you've acted on?",
	},
}

// NetworkQuestions probe communities, events, and trusted peers
var NetworkQuestions = []string{
	"What Slack communities or Discord servers are you part of?",
	"What conferences or events do you attend - virtual or in-person?",
	"Are you part of any professional associations?",
	"Who do you go to when you need advice in this area?",
}

// TouchpointQuestions probe physical spaces and discovery locations
var TouchpointQuestions = []string{
	"Where do you do your best thinking? Office? Coffee shop? Gym?",
	"Where did you first encounter the solution you chose?",
	"Walk me through a typical week - what places do you frequent?",
}

// DiscoveryQuestions probe how they research and vet solutions
var DiscoveryQuestions = []string{
	"When you first started thinking about solving this problem, where did you go?",
	"What sources did you trust most during your research?",
	"Looking back, what touchpoint had the most influence?",
}

// DietQuestionSample returns a representative cross-section of the diet
// banks for use as phase guidance
func DietQuestionSample() []string {
	return []string{
		DailyRoutineQuestions["morning"],
		MediaConsumptionQuestions["podcasts"][0],
		NetworkQuestions[0],
		TouchpointQuestions[0],
		DiscoveryQuestions[1],
	}
}
