package routes

import (
	"html/template"
	"net/http"
	"strings"

	"booking-app/config"
	artistsapi "booking-app/internal/api/artists"
	showsapi "booking-app/internal/api/shows"
	venuesapi "booking-app/internal/api/venues"
	"booking-app/internal/app/http/middleware"
	"booking-app/internal/app/http/render"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the engine with middleware, sessions and templates
// wired; templateGlob lets tests point at the templates tree from
// their own working directory.
func NewRouter(templateGlob string) *gin.Engine {
	r := gin.New()

	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		render.ServerError(c)
		c.Abort()
	}))
	r.Use(middleware.RequestLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{config.CORS_ORIGIN},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	store := cookie.NewStore([]byte(config.SESSION_SECRET))
	r.Use(sessions.Sessions("booking_session", store))

	r.SetFuncMap(template.FuncMap{
		"join": strings.Join,
	})
	r.LoadHTMLGlob(templateGlob)

	RegisterRoutes(r)
	return r
}

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", func(c *gin.Context) {
		render.HTML(c, http.StatusOK, "pages/home.html", nil)
	})

	// Form submissions get HTML stripped before binding.
	public := r.Group("/")
	public.Use(middleware.SanitizeFormInputMiddleware())

	public.GET("/venues", venuesapi.ListVenues)
	public.POST("/venues/search", venuesapi.SearchVenues)
	public.GET("/venues/create", venuesapi.NewVenueForm)
	public.POST("/venues/create", venuesapi.CreateVenue)
	public.GET("/venues/:id", venuesapi.GetVenue)
	public.DELETE("/venues/:id", venuesapi.DeleteVenue)
	public.GET("/venues/:id/edit", venuesapi.EditVenueForm)
	public.POST("/venues/:id/edit", venuesapi.UpdateVenue)

	public.GET("/artists", artistsapi.ListArtists)
	public.POST("/artists/search", artistsapi.SearchArtists)
	public.GET("/artists/create", artistsapi.NewArtistForm)
	public.POST("/artists/create", artistsapi.CreateArtist)
	public.GET("/artists/:id", artistsapi.GetArtist)
	public.GET("/artists/:id/edit", artistsapi.EditArtistForm)
	public.POST("/artists/:id/edit", artistsapi.UpdateArtist)

	public.GET("/shows", showsapi.ListShows)
	public.GET("/shows/create", showsapi.NewShowForm)
	public.POST("/shows/create", showsapi.CreateShow)

	r.NoRoute(func(c *gin.Context) {
		render.NotFound(c)
	})
}
