package shared

import (
	"context"
	"strings"

	"fuego/shared/cache"
	"fuego/shared/constant"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins the given parts into a single colon-delimited cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
