package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quickta/backend/internal/config"
	"github.com/quickta/backend/internal/models"
	"github.com/quickta/backend/pkg/logger"
	"github.com/sashabaranov/go-openai"
	"gorm.io/gorm"
)

// Speaker markers of the prompt wire format. The stop list hands the literal
// markers to the completion service so it does not speak for the other side.
const (
	userSpeaker     = "Human"
	agentSpeaker    = "AI"
	restartSequence = "\n\n" + userSpeaker + ": "
	startSequence   = "\n" + agentSpeaker + ": "
)

// GenerationParams is the flat parameter set passed through to the external
// text-completion service, taken from the course's active model profile.
type GenerationParams struct {
	Engine           string
	Temperature      float32
	MaxTokens        int
	TopP             float32
	N                int
	Stream           bool
	Logprobs         int
	PresencePenalty  float32
	FrequencyPenalty float32
	BestOf           int
}

// completionClient is the one outbound call to the completion service.
// *openai.Client satisfies it.
type completionClient interface {
	CreateCompletion(ctx context.Context, request openai.CompletionRequest) (openai.CompletionResponse, error)
}

// CompletionService builds prompts from assembled transcripts and course model
// profiles, invokes the external completion service, and persists each
// round-trip. One network call per invocation, no retries.
type CompletionService struct {
	db         *gorm.DB
	transcript *TranscriptService
	client     completionClient
}

func NewCompletionService(db *gorm.DB, cfg *config.OpenAIConfig) *CompletionService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &CompletionService{
		db:         db,
		transcript: NewTranscriptService(db),
		client:     openai.NewClientWithConfig(clientConfig),
	}
}

// NewCompletionServiceWithClient wires an explicit completion client.
func NewCompletionServiceWithClient(db *gorm.DB, client completionClient) *CompletionService {
	return &CompletionService{
		db:         db,
		transcript: NewTranscriptService(db),
		client:     client,
	}
}

// GetConfiguration looks up the course's active model profile and returns its
// preamble text and generation parameters.
func (s *CompletionService) GetConfiguration(courseID string) (string, *GenerationParams, error) {
	var profile models.GPTModel
	err := s.db.Where("course_id = ? AND is_active = ?", courseID, true).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrNoActiveModel
		}
		return "", nil, fmt.Errorf("load model profile: %w", err)
	}

	return profile.Prompt, &GenerationParams{
		Engine:           profile.ModelName,
		Temperature:      profile.Temperature,
		MaxTokens:        profile.MaxTokens,
		TopP:             profile.TopP,
		N:                profile.N,
		Stream:           profile.Stream,
		Logprobs:         profile.Logprobs,
		PresencePenalty:  profile.PresencePenalty,
		FrequencyPenalty: profile.FrequencyPenalty,
		BestOf:           profile.BestOf,
	}, nil
}

// GenerateReply produces the agent's answer to userMessage within the given
// conversation. The prompt is the course preamble (fresh conversations only)
// plus the prior transcript, the new user message, and a start-of-answer
// marker. The first completion choice is trimmed and truncated at any echoed
// restart marker. The full prompt and reply are persisted as a CompletionLog.
func (s *CompletionService) GenerateReply(ctx context.Context, conversationID, courseID, userMessage string) (string, error) {
	preamble, params, err := s.GetConfiguration(courseID)
	if err != nil {
		return "", err
	}

	chatlogs, err := s.transcript.Assemble(conversationID)
	if err != nil {
		return "", err
	}
	// The turn for the incoming message may already be persisted; the prompt
	// carries it separately.
	if n := len(chatlogs); n > 0 && chatlogs[n-1].IsUser && chatlogs[n-1].Chatlog == userMessage {
		chatlogs = chatlogs[:n-1]
	}

	prompt := s.buildPrompt(preamble, chatlogs, userMessage)

	start := time.Now()
	resp, err := s.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:            params.Engine,
		Prompt:           prompt,
		Temperature:      params.Temperature,
		MaxTokens:        params.MaxTokens,
		TopP:             params.TopP,
		N:                params.N,
		Stream:           params.Stream,
		LogProbs:         params.Logprobs,
		PresencePenalty:  params.PresencePenalty,
		FrequencyPenalty: params.FrequencyPenalty,
		BestOf:           params.BestOf,
		Stop:             []string{" " + userSpeaker + ":", " " + agentSpeaker + ":"},
	})
	latency := time.Since(start).Milliseconds()

	if err != nil {
		s.logRoundTrip(conversationID, courseID, params.Engine, prompt, "", latency, err)
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no completion choices returned")
		s.logRoundTrip(conversationID, courseID, params.Engine, prompt, "", latency, err)
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	answer := extractReply(resp.Choices[0].Text)
	s.logRoundTrip(conversationID, courseID, params.Engine, prompt, answer, latency, nil)
	return answer, nil
}

// buildPrompt concatenates the preamble (only when the prior transcript is
// empty), the rendered transcript, the restart marker with the new message,
// and the start-of-answer marker.
func (s *CompletionService) buildPrompt(preamble string, prior []models.Chatlog, question string) string {
	head := s.transcript.Render(prior)
	if head == "" {
		head = preamble
	}
	return head + restartSequence + question + startSequence
}

// extractReply trims the raw completion text and truncates at the first
// echoed restart marker, in case the model keeps talking as the user.
func extractReply(raw string) string {
	answer := strings.TrimSpace(raw)
	if cut, _, found := strings.Cut(answer, strings.TrimSuffix(restartSequence, " ")); found {
		return cut
	}
	return answer
}

func (s *CompletionService) logRoundTrip(conversationID, courseID, engine, prompt, reply string, latencyMs int64, callErr error) {
	entry := models.CompletionLog{
		ConversationID: conversationID,
		CourseID:       courseID,
		Engine:         engine,
		Prompt:         prompt,
		Reply:          reply,
		LatencyMs:      latencyMs,
		Success:        callErr == nil,
	}
	if callErr != nil {
		entry.ErrorMessage = callErr.Error()
	}
	if err := s.db.Create(&entry).Error; err != nil {
		logger.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to persist completion log")
	}
}
