package handler

import (
	"net/http"

	"desert-war-service/api"
	"desert-war-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// EventHandler обрабатывает HTTP-запросы для регистрации событий
type EventHandler struct {
	*BaseHandler
	eventUseCase domain.EventUseCase
}

// NewEventHandler создает новый экземпляр EventHandler
func NewEventHandler(eventUseCase domain.EventUseCase, logger *logrus.Logger) *EventHandler {
	return &EventHandler{
		BaseHandler:  NewBaseHandler(logger),
		eventUseCase: eventUseCase,
	}
}

// PostEventAdd регистрирует событие с составом, пришедшим из внешней системы
func (h *EventHandler) PostEventAdd(c echo.Context) error {
	logEntry := h.logRequest(c, "create_event")

	var req api.PostEventAddJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, logEntry, err)
	}

	logEntry = logEntry.WithField("event_id", req.EventId)
	logEntry.Info("Creating event")

	event := &domain.Event{
		ID:   req.EventId,
		Name: req.Name,
	}
	for _, member := range req.Members {
		event.Members = append(event.Members, toDomainMember(member))
	}

	if err := h.eventUseCase.CreateEvent(c.Request().Context(), event); err != nil {
		logEntry.WithError(err).Error("Failed to create event")
		return h.respondError(c, err)
	}

	logEntry.WithField("members_count", len(event.Members)).Info("Event created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"event_id":      event.ID,
		"members_count": len(event.Members),
	})
}
