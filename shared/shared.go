package shared

import (
	"context"
	"math"
	"phoenix/shared/cache"
	"phoenix/shared/constant"
	"phoenix/shared/dto"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins key parts with the conventional separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery keys a cached list by its pagination and any extra
// query discriminators, so different pages and filters never collide.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, extra ...string) string {
	parts := append([]string{prefix, strconv.Itoa(params.Page), strconv.Itoa(params.Limit)}, extra...)

	return strings.Join(parts, ":")
}

// InvalidateCaches drops every cache entry under the given prefix. Failures
// only mean a stale read until TTL, so they are logged and swallowed.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}
