package routes

import (
	"sync"

	"gallery-app/config"
	adminapi "gallery-app/internal/api/admin"
	authapi "gallery-app/internal/api/auth"
	eventsapi "gallery-app/internal/api/events"
	exhibitionsapi "gallery-app/internal/api/exhibitions"
	siteapi "gallery-app/internal/api/site"
	worksapi "gallery-app/internal/api/works"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/auth"
	"gallery-app/internal/domain/site"
	"gallery-app/internal/logging"
	"gallery-app/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Deps struct {
	Config *config.Config
	Repo   *repository.Repository
	Auth   *auth.Service
}

// NewRouter builds the engine with logging, recovery, CORS outside
// production when an origin is configured, and every route.
func NewRouter(d Deps) *gin.Engine {
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidators()

	r := gin.New()
	r.Use(logging.RequestLogger(), logging.Recovery())

	if !d.Config.IsProduction() && d.Config.CORSOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{d.Config.CORSOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", logging.RequestIDHeader},
			ExposeHeaders:    []string{logging.RequestIDHeader},
			AllowCredentials: true,
		}))
	}

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cookie := middleware.SessionCookie{Name: d.Config.SessionCookie, Secure: d.Config.IsProduction()}

	authH := authapi.NewHandler(d.Auth, cookie)
	worksH := worksapi.NewHandler(d.Repo.Artists, d.Repo.Artworks)
	exhibitionsH := exhibitionsapi.NewHandler(d.Repo.Exhibitions)
	eventsH := eventsapi.NewHandler(d.Repo.Events)
	siteH := siteapi.NewHandler(galleryInfo(d.Config.Gallery))
	adminH := adminapi.NewHandler(d.Repo.Stats)

	r.GET("/health", siteapi.Health)

	api := r.Group("/api")

	// Public
	api.POST("/auth/login", authH.Login)
	api.POST("/auth/logout", authH.Logout)
	api.GET("/gallery", siteH.Gallery)

	api.GET("/artists", worksH.ListArtists)
	api.GET("/artists/:id", worksH.GetArtist)
	api.GET("/artworks", worksH.ListArtworks)
	api.GET("/artworks/:id", worksH.GetArtwork)

	api.GET("/exhibitions", exhibitionsH.List)
	api.GET("/exhibitions/slug/:slug", exhibitionsH.GetBySlug)
	api.GET("/exhibitions/:id", exhibitionsH.Get)

	api.GET("/events", eventsH.List)
	api.GET("/events/slug/:slug", eventsH.GetBySlug)
	api.GET("/events/:id", eventsH.Get)

	// Authenticated
	authed := api.Group("/")
	authed.Use(middleware.RequireSession(d.Auth, d.Config.SessionCookie), middleware.SanitizeInput())

	authed.GET("/auth/me", middleware.Authed(authH.Me))
	authed.GET("/admin/stats", middleware.Authed(adminH.Stats))

	authed.POST("/artists", middleware.Authed(worksH.CreateArtist))
	authed.DELETE("/artists/:id", middleware.Authed(worksH.DeleteArtist))

	authed.POST("/artworks", middleware.Authed(worksH.CreateArtwork))
	authed.PUT("/artworks/:id", middleware.Authed(worksH.UpdateArtwork))
	authed.DELETE("/artworks/:id", middleware.Authed(worksH.DeleteArtwork))

	authed.POST("/exhibitions", middleware.Authed(exhibitionsH.Create))
	authed.PUT("/exhibitions/:id", middleware.Authed(exhibitionsH.Update))
	authed.DELETE("/exhibitions/:id", middleware.Authed(exhibitionsH.Delete))

	authed.POST("/events", middleware.Authed(eventsH.Create))
	authed.PUT("/events/:id", middleware.Authed(eventsH.Update))
	authed.DELETE("/events/:id", middleware.Authed(eventsH.Delete))
}

func galleryInfo(g config.Gallery) site.GalleryInfo {
	return site.GalleryInfo{
		Name:         g.Name,
		Description:  g.Description,
		Address:      g.Address,
		City:         g.City,
		PostalCode:   g.PostalCode,
		Country:      g.Country,
		Phone:        g.Phone,
		Email:        g.Email,
		WorkingHours: g.WorkingHours,
	}
}

var validatorsOnce sync.Once

func registerValidators() {
	validatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
				return site.ValidSlug(fl.Field().String())
			})
		}
	})
}
