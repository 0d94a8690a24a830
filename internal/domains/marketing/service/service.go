package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Marketing=MockMarketingService

import (
	"context"
	"fmt"

	"fuego/config"
	"fuego/infras/genai"
	"fuego/infras/otel"
	"fuego/internal/domains/marketing/model/dto"
	"fuego/shared"
	"fuego/shared/cache"
	"fuego/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	entityName     = "marketing"
	cacheKeyPrefix = "marketing:copy"

	// Creative but not unhinged.
	copyTemperature = 0.8

	promptTemplate = `Atue como um especialista em Marketing Gastronômico para o restaurante 'Fuego Prime'.
Crie uma legenda curta, atraente e com emojis para o Instagram.

Prato: %s
Descrição: %s
Tom de voz: %s

A legenda deve ter chamadas para ação (CTA) para reservar mesa. Não use hashtags em excesso.`

	// User-facing fallbacks, returned in the response body rather than as
	// errors so the caller always gets something to show.
	fallbackUnavailable = "Erro ao conectar com a IA. Tente novamente."
)

// Marketing turns menu items into Instagram captions via the Gemini API.
type Marketing interface {
	GenerateCopy(ctx context.Context, req dto.GenerateCopyRequest) (dto.GenerateCopyResponse, error)
}

type marketingServiceImpl struct {
	generator genai.Generator
	cache     cache.RedisCache
	config    *config.Config
	otel      otel.Otel
}

func New(
	generator genai.Generator,
	cache cache.RedisCache,
	config *config.Config,
	otel otel.Otel,
) Marketing {
	return &marketingServiceImpl{
		generator: generator,
		cache:     cache,
		config:    config,
		otel:      otel,
	}
}

func (s *marketingServiceImpl) GenerateCopy(ctx context.Context, req dto.GenerateCopyRequest) (dto.GenerateCopyResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.GenerateCopy", constant.OtelServiceScopeName, entityName))
	defer scope.End()

	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, req.DishName, req.Tone)

	var cached string
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && cached != "" {
		return dto.GenerateCopyResponse{Copy: cached}, nil
	}

	prompt := fmt.Sprintf(promptTemplate, req.DishName, req.DishDescription, req.Tone)

	copyText, err := s.generator.Generate(ctx, prompt, copyTemperature)
	if err != nil {
		// Generation trouble is reported inside the copy itself; the endpoint
		// stays a 200 so the panel can always render a caption box.
		log.Warn().Err(err).Str("dish", req.DishName).Msg("Failed generating marketing copy")
		scope.TraceError(err)

		return dto.GenerateCopyResponse{Copy: fallbackUnavailable}, nil
	}

	if err := s.cache.Save(ctx, cacheKey, copyText, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Failed caching marketing copy")
	}

	return dto.GenerateCopyResponse{Copy: copyText}, nil
}
