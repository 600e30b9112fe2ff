package handler

import (
	"net/http"

	"desert-war-service/api"
	"desert-war-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RosterHandler обрабатывает HTTP-запросы распределения состава
type RosterHandler struct {
	*BaseHandler
	allocationUseCase domain.AllocationUseCase
}

// NewRosterHandler создает новый экземпляр RosterHandler
func NewRosterHandler(allocationUseCase domain.AllocationUseCase, logger *logrus.Logger) *RosterHandler {
	return &RosterHandler{
		BaseHandler:       NewBaseHandler(logger),
		allocationUseCase: allocationUseCase,
	}
}

// GetRosterGet возвращает группы состава события
func (h *RosterHandler) GetRosterGet(c echo.Context, params api.GetRosterGetParams) error {
	logEntry := h.logRequest(c, "get_roster").WithField("event_id", params.EventId)

	view, err := h.allocationUseCase.GetRoster(c.Request().Context(), params.EventId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get roster")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAPIRosterView(view))
}

// PostRosterReload перечитывает состав из хранилища
func (h *RosterHandler) PostRosterReload(c echo.Context) error {
	logEntry := h.logRequest(c, "reload_roster")

	var req api.PostRosterReloadJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, logEntry, err)
	}

	logEntry = logEntry.WithField("event_id", req.EventId)

	view, err := h.allocationUseCase.ReloadRoster(c.Request().Context(), req.EventId)
	if err != nil {
		logEntry.WithError(err).Error("Failed to reload roster")
		return h.respondError(c, err)
	}

	logEntry.Info("Roster reloaded")
	return c.JSON(http.StatusOK, toAPIRosterView(view))
}

// PostRosterMove перемещает участника между группами
func (h *RosterHandler) PostRosterMove(c echo.Context) error {
	logEntry := h.logRequest(c, "move_member")

	var req api.PostRosterMoveJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, logEntry, err)
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"event_id": req.EventId,
		"user_id":  req.UserId,
		"from":     req.From,
		"to":       req.To,
	})

	result, err := h.allocationUseCase.MoveMember(
		c.Request().Context(),
		req.EventId,
		req.UserId,
		domain.Bucket(req.From),
		domain.Bucket(req.To),
	)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to move member")
		return h.respondError(c, err)
	}

	if result.Warning != nil {
		logEntry = logEntry.WithField("capacity_warning", true)
	}
	logEntry.Info("Member moved")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"roster":  toAPIRosterView(result.View),
		"warning": toAPICapacityWarning(result.Warning),
	})
}

// PostRosterSetPosition назначает позицию участнику
func (h *RosterHandler) PostRosterSetPosition(c echo.Context) error {
	logEntry := h.logRequest(c, "set_position")

	var req api.PostRosterSetPositionJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, logEntry, err)
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"event_id": req.EventId,
		"user_id":  req.UserId,
		"position": req.Position,
	})

	view, err := h.allocationUseCase.SetPosition(c.Request().Context(), req.EventId, req.UserId, req.Position)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to set position")
		return h.respondError(c, err)
	}

	logEntry.Info("Position set")
	return c.JSON(http.StatusOK, toAPIRosterView(view))
}

// PostRosterSave сохраняет несохранённые изменения состава
func (h *RosterHandler) PostRosterSave(c echo.Context) error {
	logEntry := h.logRequest(c, "save_roster")

	var req api.PostRosterSaveJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, logEntry, err)
	}

	logEntry = logEntry.WithField("event_id", req.EventId)
	logEntry.Info("Saving roster")

	outcome, err := h.allocationUseCase.SaveRoster(c.Request().Context(), req.EventId)
	if err != nil {
		logEntry.WithError(err).Error("Failed to save roster")
		return h.respondError(c, err)
	}

	logEntry.WithField("entries", outcome.Entries).Info("Roster saved successfully")
	return c.JSON(http.StatusOK, toAPICommitResult(outcome))
}

// PostRosterConfirm подтверждает состав целиком
func (h *RosterHandler) PostRosterConfirm(c echo.Context) error {
	logEntry := h.logRequest(c, "confirm_roster")

	var req api.PostRosterConfirmJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, logEntry, err)
	}

	logEntry = logEntry.WithField("event_id", req.EventId)
	logEntry.Info("Confirming roster")

	outcome, err := h.allocationUseCase.ConfirmRoster(c.Request().Context(), req.EventId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to confirm roster")
		return h.respondError(c, err)
	}

	logEntry.WithField("entries", outcome.Entries).Info("Roster confirmed successfully")
	return c.JSON(http.StatusOK, toAPICommitResult(outcome))
}
