package handler

import (
	"github.com/Emacore17/adottaungatto-it-sub001/cache"
	"github.com/gofiber/fiber/v2"
)

// invalidateCache godoc
// @Summary            Drop every cached response
// @Tags               Cache
// @Success            200
// @Security           ApiKeyAuth
// @Router             /caches/prune [GET]
func InvalidateCache(cacheRepo *cache.RedisRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := cacheRepo.Prune(); err != nil {
			return err
		}

		return ctx.SendStatus(fiber.StatusOK)
	}
}
