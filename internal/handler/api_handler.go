package handler

import (
	"desert-war-service/api"
	"desert-war-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*EventHandler
	*RosterHandler
}

func NewAPIHandler(
	eventUseCase domain.EventUseCase,
	allocationUseCase domain.AllocationUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		EventHandler:  NewEventHandler(eventUseCase, logger),
		RosterHandler: NewRosterHandler(allocationUseCase, logger),
	}
}
