package interview

import (
	"regexp"
	"strings"
)

// Best-effort heuristics for pulling structured fields out of the model's
// free-text synthesis response. The text is model-generated and not
// contractually structured, so every heuristic has a "not found" fallback.

const (
	jobStatementFallback     = "Job statement pending synthesis"
	strugglingMomentFallback = "Struggling moment pending identification"

	maxKeyInsights     = 10
	maxTopQuotes       = 5
	maxRecommendations = 5

	// Bulleted lines shorter than this are headers or noise, not
	// recommendations
	minRecommendationLength = 10
)

var (
	jobStatementPattern   = regexp.MustCompile(`(?i)When I[^.]+\.`)
	recommendationPattern = regexp.MustCompile(`^[\d\-\*•]`)
	bulletPrefixPattern   = regexp.MustCompile(`^[\d.\-\*•\s]+`)
)

// extractJobStatement looks for a "When I..." sentence in the synthesis
// response
func extractJobStatement(response string) string {
	if match := jobStatementPattern.FindString(response); match != "" {
		return match
	}
	return jobStatementFallback
}

// extractStrugglingMoment returns the first struggling-moment insight
func extractStrugglingMoment(insights []Insight) string {
	for _, insight := range insights {
		if insight.Category == CategoryStrugglingMoment {
			return insight.Content
		}
	}
	return strugglingMomentFallback
}

// extractRecommendations pulls numbered or bulleted lines out of the
// synthesis response
func extractRecommendations(response string) []string {
	recommendations := []string{}

	for _, line := range strings.Split(response, "\n") {
		if !recommendationPattern.MatchString(line) {
			continue
		}
		cleaned := strings.TrimSpace(bulletPrefixPattern.ReplaceAllString(line, ""))
		if len(cleaned) > minRecommendationLength {
			recommendations = append(recommendations, cleaned)
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// keyInsights returns the contents of the most significant insights,
// skipping uncategorized ones
func keyInsights(insights []Insight) []string {
	contents := []string{}
	for _, insight := range insights {
		if insight.Category == CategoryGeneral {
			continue
		}
		contents = append(contents, insight.Content)
		if len(contents) == maxKeyInsights {
			break
		}
	}
	return contents
}

// topQuotes returns the first captured verbatim quotes
func topQuotes(quotes []VerbatimQuote) []VerbatimQuote {
	if len(quotes) > maxTopQuotes {
		quotes = quotes[:maxTopQuotes]
	}
	return append([]VerbatimQuote{}, quotes...)
}
