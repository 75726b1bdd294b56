package handler

import (
	"errors"

	"career-connect/internal/delivery/http/dto"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/domain/opportunity"
	"career-connect/internal/pkg/response"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type OpportunityHandler struct {
	uc usecase.OpportunityUsecase
}

func NewOpportunityHandler(uc usecase.OpportunityUsecase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

func (h *OpportunityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *OpportunityHandler) List(c fiber.Ctx) error {
	f := opportunity.ListFilter{
		Source:   c.Query("source"),
		Category: c.Query("category"),
		Limit:    parseQueryInt(c, "limit", 50),
		Offset:   parseQueryInt(c, "offset", 0),
	}

	items, err := h.uc.List(c.Context(), f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOpportunityListResponse(items))
}

func (h *OpportunityHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrOpportunityNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Opportunity not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOpportunityItem(item))
}
