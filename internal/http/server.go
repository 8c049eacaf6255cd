package httpapi

import (
	"context"
	"net/http"
	"time"

	"elearn-backend-go/internal/config"
	"elearn-backend-go/internal/models"
	"elearn-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	MetricsHub *services.MetricsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		TTL:        time.Duration(cfg.TokenTTLSeconds) * time.Second,
		BcryptCost: cfg.BcryptCost,
	}
	return &Server{
		DB:         db,
		Config:     cfg,
		Tokens:     tokens,
		MetricsHub: hub,
	}
}

func (s *Server) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	// CORS_ORIGINS defaults to "*"; the browser surface expects cross-origin
	// access unless an operator narrows the list.
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/", s.Root)
		api.Get("/health", s.Health)

		api.Post("/auth/register", s.Register)
		api.Post("/auth/login", s.Login)

		api.Group(func(private chi.Router) {
			private.Use(WithAuth(s.Tokens, s.DB))

			private.Get("/auth/profile", s.Profile)
			private.Patch("/auth/profile", s.UpdateProfile)
			private.Post("/auth/change-password", s.ChangePassword)

			private.Route("/classrooms", func(classrooms chi.Router) {
				classrooms.Get("/", s.ListClassrooms)
				classrooms.Post("/", s.CreateClassroom)
				classrooms.Post("/join", s.JoinClassroom)
				classrooms.Get("/{classroomId}", s.GetClassroom)
				classrooms.Put("/{classroomId}", s.UpdateClassroom)
				classrooms.Delete("/{classroomId}", s.DeleteClassroom)
				classrooms.Delete("/{classroomId}/leave", s.LeaveClassroom)
				classrooms.Get("/{classroomId}/students", s.ListClassroomStudents)
			})

			private.Route("/materials", func(materials chi.Router) {
				materials.Get("/classroom/{classroomId}", s.ListMaterials)
				materials.Post("/classroom/{classroomId}", s.CreateMaterial)
				materials.Post("/classroom/{classroomId}/reorder", s.ReorderMaterials)
				materials.Get("/{materialId}", s.GetMaterial)
				materials.Put("/{materialId}", s.UpdateMaterial)
				materials.Delete("/{materialId}", s.DeleteMaterial)
			})

			private.With(RequireRole(models.RoleTeacher)).Get("/metrics/history", s.MetricsHistory)
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}

func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "E-Learning Platform API",
		"version": "1.0.0",
	})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.DB.Ping(); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
