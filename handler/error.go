package handler

import (
	"context"
	"errors"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/Emacore17/adottaungatto-it-sub001/search"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// error codes returned to clients
const (
	CodeInvalidLocationIntent = "INVALID_LOCATION_INTENT"
	CodeInvalidFilterRange    = "INVALID_FILTER_RANGE"
	CodeInvalidSort           = "INVALID_SORT"
	CodeNotFound              = "NOT_FOUND"
	CodeUpstreamUnavailable   = "UPSTREAM_UNAVAILABLE"
	CodeTimeout               = "TIMEOUT"
	CodeBadRequest            = "BAD_REQUEST"
	CodeInternal              = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorHandler renders every error returned by a handler as ErrorResponse.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	status, code := classify(err)
	if status >= fiber.StatusInternalServerError {
		log.Logger().Error("request failed",
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.String("code", code),
			zap.Error(err))
	}

	return ctx.Status(status).JSON(ErrorResponse{Error: code, Message: err.Error()})
}

func classify(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, geo.ErrInvalidLocationIntent):
		return fiber.StatusBadRequest, CodeInvalidLocationIntent
	case errors.Is(err, search.ErrInvalidFilterRange):
		return fiber.StatusBadRequest, CodeInvalidFilterRange
	case errors.Is(err, search.ErrInvalidSort):
		return fiber.StatusBadRequest, CodeInvalidSort
	case errors.Is(err, geo.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, search.ErrUpstreamUnavailable):
		return fiber.StatusServiceUnavailable, CodeUpstreamUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, CodeTimeout
	case errors.As(err, &fe):
		switch fe.Code {
		case fiber.StatusNotFound:
			return fe.Code, CodeNotFound
		case fiber.StatusServiceUnavailable:
			return fe.Code, CodeUpstreamUnavailable
		}
		if fe.Code < fiber.StatusInternalServerError {
			return fe.Code, CodeBadRequest
		}
		return fe.Code, CodeInternal
	}
	return fiber.StatusInternalServerError, CodeInternal
}
