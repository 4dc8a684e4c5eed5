package interview

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/tekelala/jtbd-interview-agent/internal/registry"
	interview_store "github.com/tekelala/jtbd-interview-agent/internal/stores/interview"
	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
	"github.com/tekelala/jtbd-interview-agent/pkg/provider"
	"github.com/tekelala/jtbd-interview-agent/pkg/utils"
)

// Service ties the session registry, the persistence store, and the
// provider factory together for the interview module
type Service struct {
	Registry *registry.Registry
	Store    interview.StoreInterface

	// NewProvider builds a completion provider for one session
	NewProvider func(providerName, model string) (provider.CompletionProvider, error)

	// NewExtractorOption returns engine options, extending the keyword
	// rules when a rules file is configured
	extractorOptions []interview.Option
}

// service is the singleton used by the controllers
var service *Service

// GetService returns the module's service instance
func GetService() *Service {
	return service
}

// SetService replaces the module's service instance. Used by tests to
// inject fakes.
func SetService(s *Service) {
	service = s
}

// Init wires the interview module from configuration. The process aborts
// when a required setting is missing or a backing service cannot be
// reached.
func Init(cfg *utils.Config) {
	store := buildStore(cfg)

	s := &Service{
		Registry:    registry.NewRegistry(nil),
		Store:       store,
		NewProvider: makeProviderFactory(cfg),
	}

	// Optional keyword rule extensions
	if path := cfg.Get("EXTRACTION_RULES_FILE"); path != "" {
		extractor, err := interview.NewExtractorFromConfig(path)
		if err != nil {
			log.Fatalf("[INTERVIEW]: unable to load extraction rules (%v)", err)
		}
		s.extractorOptions = append(s.extractorOptions, interview.WithExtractor(extractor))
		log.Printf("[INTERVIEW]: loaded extraction rules from %s", path)
	}

	service = s
}

// NewInterviewer builds an engine for one session
func (s *Service) NewInterviewer(providerName, model string) (*interview.Interviewer, error) {
	llm, err := s.NewProvider(providerName, model)
	if err != nil {
		return nil, err
	}
	return interview.NewInterviewer(llm, s.extractorOptions...), nil
}

// Finalize ends the session's interview, persists it, and drops the
// session from the registry. The caller must hold the session's lock.
func (s *Service) Finalize(ctx context.Context, session *registry.Session) (string, *interview.Summary, error) {
	summary, err := session.Interviewer.EndInterview(ctx)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	stored := &interview.StoredInterview{
		ID:          interview.GenerateInterviewID(),
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   now,
		CompletedAt: &now,
		Config: interview.StoredConfig{
			ProductContext:  session.Config.ProductContext,
			IntervieweeName: session.Config.IntervieweeName,
			Model:           session.Interviewer.Model(),
		},
		Data:     session.Interviewer.GetInterviewData(),
		Messages: session.Interviewer.GetConversationHistory(),
		Summary:  summary,
	}

	if err := s.Store.Save(ctx, stored); err != nil {
		return "", nil, fmt.Errorf("interview finished but could not be saved: %w", err)
	}

	s.Registry.Remove(session.ID)
	return stored.ID, summary, nil
}

// buildStore selects MySQL persistence when database settings are present
// and falls back to the in-memory store otherwise
func buildStore(cfg *utils.Config) interview.StoreInterface {
	dsn := cfg.Get("DATABASE_URL")
	if dsn == "" && cfg.Has("MYSQL_HOST") {
		// Assemble the DSN from individual settings
		dbConfig := mysql.Config{
			User:      cfg.Get("MYSQL_USERNAME"),
			Passwd:    cfg.Get("MYSQL_ROOT_PASSWORD"),
			Net:       "tcp",
			Addr:      fmt.Sprintf("%s:%s", cfg.Get("MYSQL_HOST"), cfg.GetWithDefault("MYSQL_PORT", "3306")),
			DBName:    cfg.Get("MYSQL_DATABASE"),
			ParseTime: true,
		}
		dsn = dbConfig.FormatDSN()
	}

	if dsn == "" {
		log.Println("[INTERVIEW]: no database configured, using in-memory interview store")
		return interview_store.NewInMemoryStore()
	}

	store, err := interview_store.NewStore(dsn)
	if err != nil {
		log.Fatalf("[INTERVIEW]: unable to open interview store (%v)", err)
	}
	return store
}

// makeProviderFactory returns the per-session provider constructor. The
// provider name defaults from config, then to anthropic.
func makeProviderFactory(cfg *utils.Config) func(providerName, model string) (provider.CompletionProvider, error) {
	return func(providerName, model string) (provider.CompletionProvider, error) {
		if providerName == "" {
			providerName = cfg.GetWithDefault("PROVIDER", "anthropic")
		}

		switch strings.ToLower(providerName) {
		case "anthropic":
			return provider.NewAnthropicProvider(cfg.Get("ANTHROPIC_API_KEY"), model)
		case "openai":
			return provider.NewOpenAIProvider(cfg.Get("OPENAI_API_KEY"), model)
		default:
			return nil, fmt.Errorf("unknown provider '%s'", providerName)
		}
	}
}
