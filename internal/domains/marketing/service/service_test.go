package service_test

import (
	"context"
	"errors"
	"testing"

	"fuego/config"
	genaimocks "fuego/infras/genai/mocks"
	otelmocks "fuego/infras/otel/mocks"
	cachemocks "fuego/shared/cache/mocks"

	"fuego/internal/domains/marketing/model/dto"
	"fuego/internal/domains/marketing/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMarketing(t *testing.T) (service.Marketing, *genaimocks.MockGenerator, *cachemocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	generator := genaimocks.NewMockGenerator(ctrl)
	redis := cachemocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(generator, redis, cfg, otelmocks.NewOtel()), generator, redis
}

func request() dto.GenerateCopyRequest {
	return dto.GenerateCopyRequest{
		DishName:        "Picanha al Fuego",
		DishDescription: "Picanha grelhada na brasa com chimichurri da casa",
		Tone:            "divertido",
	}
}

func TestMarketingService_GenerateCopy(t *testing.T) {
	ctx := context.Background()

	t.Run("generates and caches fresh copy", func(t *testing.T) {
		svc, generator, redis := newMarketing(t)

		redis.EXPECT().
			Get(gomock.Any(), "marketing:copy:Picanha al Fuego:divertido", gomock.Any()).
			Return(errors.New("redis: nil"))
		generator.EXPECT().
			Generate(gomock.Any(), gomock.Any(), float32(0.8)).
			DoAndReturn(func(_ context.Context, prompt string, _ float32) (string, error) {
				assert.Contains(t, prompt, "Picanha al Fuego")
				assert.Contains(t, prompt, "divertido")
				assert.Contains(t, prompt, "Fuego Prime")

				return "🔥 Venha provar!", nil
			})
		redis.EXPECT().
			Save(gomock.Any(), "marketing:copy:Picanha al Fuego:divertido", "🔥 Venha provar!", 3600).
			Return(nil)

		res, err := svc.GenerateCopy(ctx, request())

		require.NoError(t, err)
		assert.Equal(t, "🔥 Venha provar!", res.Copy)
	})

	t.Run("serves cached copy without touching the generator", func(t *testing.T) {
		svc, _, redis := newMarketing(t)

		redis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*string)) = "cached caption"

				return nil
			})

		res, err := svc.GenerateCopy(ctx, request())

		require.NoError(t, err)
		assert.Equal(t, "cached caption", res.Copy)
	})

	t.Run("generator failure yields the fixed fallback copy, not an error", func(t *testing.T) {
		svc, generator, redis := newMarketing(t)

		redis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis: nil"))
		generator.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("quota exceeded"))

		res, err := svc.GenerateCopy(ctx, request())

		require.NoError(t, err)
		assert.Equal(t, "Erro ao conectar com a IA. Tente novamente.", res.Copy)
	})

	t.Run("cache save failure does not fail the request", func(t *testing.T) {
		svc, generator, redis := newMarketing(t)

		redis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis: nil"))
		generator.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("caption", nil)
		redis.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		res, err := svc.GenerateCopy(ctx, request())

		require.NoError(t, err)
		assert.Equal(t, "caption", res.Copy)
	})
}
