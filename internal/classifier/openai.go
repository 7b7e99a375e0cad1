package classifier

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/L52103/appEscritorioControl/config"
)

// summaryPrompt asks the model for a short clean Spanish summary of the
// worker's justification, suitable for the absence ledger.
const summaryPrompt = `Eres un administrador que debe describir de la mejor manera la inasistencia de un empleado. Resume de forma breve y clara este mensaje en ESPAÑOL para usarlo como motivo en una tabla de inasistencias, corrigiendo errores ortográficos y manteniendo el contexto: "%s". Solo responde con el texto resumido en español, sin explicaciones, omite groserías si las hay y no coloques comillas.`

// OpenAISummarizer calls an OpenAI-compatible chat endpoint, normally a
// locally hosted model. All calls take one mutex so classification is
// serialized process-wide; local model servers handle one request at a
// time anyway and parallel calls just queue on the GPU.
type OpenAISummarizer struct {
	mu        sync.Mutex
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *zap.Logger
}

// NewOpenAISummarizer builds the summarizer from classifier config.
func NewOpenAISummarizer(cfg config.ClassifierConfig, logger *zap.Logger) *OpenAISummarizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 50
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAISummarizer{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: maxTokens,
		timeout:   timeout,
		logger:    logger,
	}
}

// Summarize sends the message through the chat endpoint at temperature
// zero and returns the model's summary.
func (s *OpenAISummarizer) Summarize(ctx context.Context, message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(summaryPrompt, message)},
		},
		MaxTokens:   s.maxTokens,
		Temperature: 0,
	})
	if err != nil {
		s.logger.Warn("summarizer call failed, falling back to raw message", zap.Error(err))
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarizer returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
