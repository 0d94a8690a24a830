package genai

//go:generate go run go.uber.org/mock/mockgen -source=./genai.go -destination=./mocks/genai_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"fuego/config"
	"fuego/infras/otel"
	"fuego/shared/constant"

	"github.com/rs/zerolog/log"
	googlegenai "google.golang.org/genai"
)

var ErrNotConfigured = errors.New("gemini client not configured")

// Generator produces free-form text from a prompt via the Gemini API.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

type generatorImpl struct {
	client *googlegenai.Client
	model  string
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Generator {
	impl := &generatorImpl{
		model: cfg.Gemini.Model,
		otel:  ot,
	}

	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("No Gemini API key configured, marketing copy generation disabled")

		return impl
	}

	client, err := googlegenai.NewClient(context.Background(), &googlegenai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Gemini client, marketing copy generation disabled")

		return impl
	}

	impl.client = client
	log.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized")

	return impl
}

func (g *generatorImpl) Generate(ctx context.Context, prompt string, temperature float32) (res string, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".gemini.Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if g.client == nil {
		return "", ErrNotConfigured
	}

	content := googlegenai.NewContentFromText(prompt, googlegenai.RoleUser)
	genConfig := &googlegenai.GenerateContentConfig{
		Temperature: googlegenai.Ptr(temperature),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*googlegenai.Content{content}, genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from Gemini")
	}

	return text, nil
}
