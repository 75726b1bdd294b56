package handler

import (
	"strconv"
	"strings"

	"career-connect/internal/delivery/http/dto"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/pkg/response"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CareerHandler serves the analysis endpoints: recommendations, skill
// gaps, readiness score and the learning roadmap. All four require an
// authenticated user with a saved profile.
type CareerHandler struct {
	recommendations usecase.RecommendationUsecase
	gaps            usecase.SkillGapUsecase
	readiness       usecase.ReadinessUsecase
	roadmap         usecase.RoadmapUsecase
}

func NewCareerHandler(
	recommendations usecase.RecommendationUsecase,
	gaps usecase.SkillGapUsecase,
	readiness usecase.ReadinessUsecase,
	roadmap usecase.RoadmapUsecase,
) *CareerHandler {
	return &CareerHandler{
		recommendations: recommendations,
		gaps:            gaps,
		readiness:       readiness,
		roadmap:         roadmap,
	}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/recommendations", h.Recommendations)
	r.Get("/skill-gaps", h.SkillGaps)
	r.Get("/readiness", h.Readiness)
	r.Get("/roadmap", h.Roadmap)
}

func (h *CareerHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	topN := parseQueryInt(c, "top_n", 0)

	recs, err := h.recommendations.GetRecommendations(c.Context(), userID, topN)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationListResponse(recs))
}

func (h *CareerHandler) SkillGaps(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	gaps, err := h.gaps.AnalyzeGaps(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillGapResponse(gaps))
}

func (h *CareerHandler) Readiness(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	breakdown, err := h.readiness.GetReadiness(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReadinessResponse(breakdown))
}

func (h *CareerHandler) Roadmap(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	plan, err := h.roadmap.GetRoadmap(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoadmapResponse(plan))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return n
}
