package v1

import (
	"log"

	"career-connect/internal/config"
	"career-connect/internal/database"
	"career-connect/internal/delivery/http/handler"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/domain/catalog"
	"career-connect/internal/domain/recommend"
	"career-connect/internal/domain/roadmap"
	"career-connect/internal/domain/skillgap"
	"career-connect/internal/infrastructure/cache"
	"career-connect/internal/pkg/jwt"
	"career-connect/internal/repository"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	studentRepo := repository.NewPostgresStudentRepository(d.DB)
	oppRepo := repository.NewPostgresOpportunityRepository(d.DB)

	recommender := recommend.NewRecommender(catalog.New(), d.Logger)
	analyzer := skillgap.NewAnalyzer(d.Logger)
	generator := roadmap.NewGenerator(d.Logger)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(studentRepo)
	recommendationUC := usecase.NewRecommendationUsecase(studentRepo, recommender)
	skillGapUC := usecase.NewSkillGapUsecase(studentRepo, recommender, analyzer)
	readinessUC := usecase.NewReadinessUsecase(studentRepo)
	roadmapUC := usecase.NewRoadmapUsecase(studentRepo, recommender, analyzer, generator)

	var listingCache usecase.ListingCache
	if d.Cache != nil {
		listingCache = d.Cache
	}
	opportunityUC := usecase.NewOpportunityUsecase(oppRepo, listingCache, d.Config.Redis.ListingTTL, d.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	careerHandler := handler.NewCareerHandler(recommendationUC, skillGapUC, readinessUC, roadmapUC)
	opportunityHandler := handler.NewOpportunityHandler(opportunityUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	opportunityHandler.RegisterRoutes(r.Group("/opportunities"))

	protected := r.Group("", authMw.Middleware())
	profileHandler.RegisterRoutes(protected.Group("/profile"))
	careerHandler.RegisterRoutes(protected.Group("/career"))
}
