package routes

import (
	"log"

	"career-connect/internal/config"
	"career-connect/internal/database"
	"career-connect/internal/delivery/http/handler"
	v1 "career-connect/internal/delivery/http/routes/v1"
	"career-connect/internal/infrastructure/cache"
	"career-connect/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything route registration needs; the container builds
// it once at startup.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	handler.NewHealthHandler(r.deps.DB).RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.deps.Hub == nil {
		return
	}
	wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
	app.Get("/ws/opportunities", wsHandler.HandleOpportunitiesWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config: r.deps.Config,
		DB:     r.deps.DB,
		Cache:  r.deps.Cache,
		Logger: r.deps.Logger,
	})
}
