package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
	"github.com/tekelala/jtbd-interview-agent/pkg/provider"
	"github.com/tekelala/jtbd-interview-agent/pkg/utils"
)

func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Create the completion provider
	llm, err := newProvider(cfg)
	if err != nil {
		log.Fatalf("[COMMANDLINE]: Failed to initialize completion provider: %v", err)
	}

	// Optional keyword rule extensions
	var opts []interview.Option
	if path := cfg.Get("EXTRACTION_RULES_FILE"); path != "" {
		extractor, err := interview.NewExtractorFromConfig(path)
		if err != nil {
			log.Fatalf("[COMMANDLINE]: Failed to load extraction rules: %v", err)
		}
		opts = append(opts, interview.WithExtractor(extractor))
	}

	interviewer := interview.NewInterviewer(llm, opts...)

	// Start interactive session
	ctx := context.Background()
	if err := startInteractiveSession(ctx, interviewer); err != nil {
		log.Fatalf("Failed to start interactive session: %v", err)
	}
}

// newProvider builds the completion provider selected by the PROVIDER
// config value
func newProvider(cfg *utils.Config) (provider.CompletionProvider, error) {
	switch strings.ToLower(cfg.GetWithDefault("PROVIDER", "anthropic")) {
	case "anthropic":
		return provider.NewAnthropicProvider(cfg.Get("ANTHROPIC_API_KEY"), cfg.Get("MODEL"))
	case "openai":
		return provider.NewOpenAIProvider(cfg.Get("OPENAI_API_KEY"), cfg.Get("MODEL"))
	default:
		return nil, fmt.Errorf("unknown provider '%s'", cfg.Get("PROVIDER"))
	}
}

// startInteractiveSession runs one full interview on the command line
func startInteractiveSession(ctx context.Context, interviewer *interview.Interviewer) error {
	fmt.Println("JTBD Interview Agent. Commands: 'data', 'export', 'phase <name>', 'end', 'quit'.")

	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("What purchase or decision is this interview about? (optional) > ")
	if !scanner.Scan() {
		return scanner.Err()
	}
	productContext := strings.TrimSpace(scanner.Text())

	fmt.Print("Interviewee name? (optional) > ")
	if !scanner.Scan() {
		return scanner.Err()
	}
	name := strings.TrimSpace(scanner.Text())

	greeting, err := interviewer.Start(ctx, interview.Config{
		ProductContext:  productContext,
		IntervieweeName: name,
	})
	if err != nil {
		return fmt.Errorf("failed to start interview: %w", err)
	}

	fmt.Printf("\nInterviewer: %s\n", greeting)

	for {
		fmt.Print("\n> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			continue
		}

		switch {
		case input == "exit", input == "quit":
			return scanner.Err()

		case input == "data":
			printData(interviewer)
			continue

		case input == "export":
			if err := exportData(interviewer); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			continue

		case strings.HasPrefix(input, "phase "):
			setPhase(interviewer, strings.TrimPrefix(input, "phase "))
			continue

		case input == "end":
			return endInterview(ctx, interviewer)
		}

		response, err := interviewer.SendMessage(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Interviewer: %s\n", response)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

// printData shows a capture summary of the session so far
func printData(interviewer *interview.Interviewer) {
	data := interviewer.GetInterviewData()

	fmt.Printf("Phase: %s\n", interviewer.Phase())
	fmt.Printf("Insights: %d, Quotes: %d, Forces: %d, Timeline events: %d\n",
		len(data.Insights), len(data.VerbatimQuotes), data.Forces.Count(), len(data.Timeline))

	for _, event := range data.SortedTimeline() {
		fmt.Printf("  [%s] %s\n", event.Phase, event.Details)
	}
}

// exportData writes the full data model to a JSON file
func exportData(interviewer *interview.Interviewer) error {
	data, err := interviewer.ExportToJSON()
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s.json", interview.GenerateInterviewID())
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("Exported interview data to %s\n", filename)
	return nil
}

// setPhase moves the interview to a new phase
func setPhase(interviewer *interview.Interviewer, name string) {
	phase := interview.Phase(strings.TrimSpace(name))
	if !interview.ValidPhase(phase) {
		fmt.Printf("Unknown phase '%s'. Valid phases: %v\n", name, interview.Phases)
		return
	}

	interviewer.SetPhase(phase)
	fmt.Printf("Phase set to %s\n", phase)
}

// endInterview finalizes the session and prints the summary
func endInterview(ctx context.Context, interviewer *interview.Interviewer) error {
	fmt.Println("\nSynthesizing interview...")

	summary, err := interviewer.EndInterview(ctx)
	if err != nil {
		return fmt.Errorf("failed to end interview: %w", err)
	}

	fmt.Printf("\nJob statement: %s\n", summary.JobStatement)
	fmt.Printf("Struggling moment: %s\n", summary.StrugglingMoment)

	if len(summary.KeyInsights) > 0 {
		fmt.Println("\nKey insights:")
		for _, insight := range summary.KeyInsights {
			fmt.Printf("  - %s\n", insight)
		}
	}

	if len(summary.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range summary.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	return exportData(interviewer)
}
