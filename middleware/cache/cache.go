package cache

import (
	"net/http"
	"strings"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/cache"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CachedResponseHeader = "x-cached-response"

var uncachedPrefixes = []string{"/healthcheck", "/readiness", "/metrics", "/monitor", "/swagger", "/debug", "/caches"}

func New(cacheRepo *cache.RedisRepository, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cacheRepo.Enabled() || skip(c.Path()) {
			return c.Next()
		}

		reqURI := c.OriginalURL()
		hashURL := uuid.NewSHA1(uuid.NameSpaceOID, []byte(reqURI)).String()
		if c.Method() != http.MethodGet {
			// Writes are never cached and drop any entry stored for the same url.
			if err := cacheRepo.Delete(hashURL); err != nil {
				log.Logger().Warn("cache delete failed", zap.String("url", reqURI), zap.Error(err))
			}
			return c.Next()
		}

		cacheData, ok := cacheRepo.Get(hashURL)
		if !ok {
			if err := c.Next(); err != nil {
				return err
			}
			if c.Response().StatusCode() == fiber.StatusOK && len(c.Response().Body()) > 0 {
				cacheRepo.SetKey(hashURL, c.Response().Body(), ttl)
			}
			return nil
		}

		c.Set(CachedResponseHeader, "true")
		c.Response().SetBodyRaw(cacheData)
		c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
		return nil
	}
}

func skip(path string) bool {
	for _, p := range uncachedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
