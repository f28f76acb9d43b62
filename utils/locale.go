package utils

import (
	"strings"

	"b2bpro-backend/config"

	"github.com/gin-gonic/gin"
)

// RequestLocale decides which locale translated fields are resolved for:
// explicit ?locale= query param, else the first Accept-Language tag, else the
// configured fallback.
func RequestLocale(c *gin.Context) string {
	if locale := c.Query("locale"); locale != "" {
		return normalizeLocale(locale)
	}

	if header := c.GetHeader("Accept-Language"); header != "" {
		first := strings.Split(header, ",")[0]
		first = strings.TrimSpace(strings.Split(first, ";")[0])
		if first != "" && first != "*" {
			return normalizeLocale(first)
		}
	}

	return config.FallbackLocale()
}

// normalizeLocale reduces a language tag to its lowercase primary subtag,
// so "en-US" and "en" resolve the same translation row.
func normalizeLocale(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	return tag
}
