package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio-api/internal/config"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/middleware"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	User  *handler.UserHandler
	Skill *handler.SkillHandler
	Item  *handler.ItemHandler
}

// New assembles the route table. ImageRoot, when non-empty, is served
// statically under /images (the local-disk store target); with S3 storage
// the images live elsewhere and the mount is skipped. The health probe pings
// the database so /health reflects actual readiness.
func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers, imageRoot string, dbHealth func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if dbHealth != nil {
			if err := dbHealth(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("database unreachable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/signin", h.Auth.Signin)
		auth.With(authMiddleware.RequireAuth).Get("/validate", h.Auth.Validate)
	})

	r.Route("/user", func(user chi.Router) {
		user.Get("/", h.User.List)
		user.Get("/{id}", h.User.Get)
		user.Post("/", h.User.Create)
		user.With(authMiddleware.RequireAuth).Put("/{id}", h.User.Update)
		user.With(authMiddleware.RequireAuth).Delete("/{id}", h.User.Delete)
		user.With(authMiddleware.RequireAuth).Delete("/", h.User.DeleteMissingID)
	})

	r.Route("/skill", func(skill chi.Router) {
		skill.Get("/", h.Skill.List)
		skill.Post("/", h.Skill.Create)
		skill.Put("/{id}", h.Skill.Update)
		skill.Delete("/{id}", h.Skill.Delete)
	})

	r.Route("/data", func(data chi.Router) {
		data.Get("/", h.Item.List)
		data.With(authMiddleware.RequireAuth).Post("/create", h.Item.Create)
		data.With(authMiddleware.RequireAuth).Put("/update/{id}", h.Item.Update)
		data.With(authMiddleware.RequireAuth).Delete("/{id}", h.Item.Delete)
	})

	if strings.TrimSpace(imageRoot) != "" {
		fileServer := http.StripPrefix("/images/", http.FileServer(http.Dir(imageRoot)))
		r.Get("/images/*", fileServer.ServeHTTP)
	}

	return r
}
