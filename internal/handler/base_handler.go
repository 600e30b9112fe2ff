package handler

import (
	"errors"
	"net/http"

	"desert-war-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

// respondError отвечает ошибкой в формате OpenAPI: доменные ошибки по
// таблице соответствия, остальные с кодом 500.
func (h *BaseHandler) respondError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		// отказ хранилища отдаётся с исходным текстом
		if errors.Is(err, domain.ErrAssignmentValidation) {
			httpErr.Message = err.Error()
		}
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
}

// bindError отвечает 400 на тело запроса, которое не удалось разобрать.
func (h *BaseHandler) bindError(c echo.Context, logEntry *logrus.Entry, err error) error {
	logEntry.WithError(err).Warn("Failed to bind request")
	return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
}
