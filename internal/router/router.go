package router

import (
	"net/http"
	"time"

	"github.com/galerie/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the gin engine, session middleware and the full
// route table.
func SetupRouter(api *handler.API, sessionSecret string, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(allowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("galerie_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	public := r.Group("/api")
	{
		public.GET("/artworks", api.ListArtworks)
		public.GET("/artworks/:id", api.GetArtwork)
		// Artwork creation is deliberately left ungated.
		public.POST("/artworks", api.CreateArtwork)
		public.GET("/exhibitions", api.ListExhibitions)
		public.POST("/contact", api.SubmitContact)
		public.GET("/settings/featured", api.GetFeatured)
		public.GET("/settings/hours", api.GetHours)
		public.GET("/featured-works", api.GetFeaturedWorks)

		public.POST("/login", api.Login)
		public.POST("/logout", api.Logout)
	}

	admin := r.Group("/api")
	admin.Use(api.AdminRequired())
	{
		admin.DELETE("/artworks/:id", api.DeleteArtwork)
		admin.POST("/artworks/:id/additional-images", api.AddArtworkImages)
		admin.PUT("/artworks/order", api.ReorderArtworks)
		admin.GET("/artworks/slots", api.GetSlots)
		admin.PUT("/artworks/slots", api.SetSlots)

		admin.GET("/exhibitions/:id", api.GetExhibition)
		admin.POST("/exhibitions", api.CreateExhibition)
		admin.PUT("/exhibitions/order", api.ReorderExhibitions)
		admin.PUT("/exhibitions/:id/gallery", api.UpdateExhibitionGallery)
		admin.DELETE("/exhibitions/:id", api.DeleteExhibition)

		admin.POST("/upload", api.UploadImage)
		admin.GET("/contact", api.ListContacts)

		admin.PUT("/settings/featured", api.SetFeatured)
		admin.PUT("/settings/hours", api.SetHours)
		admin.PUT("/featured-works", api.SetFeaturedWorks)
		admin.PUT("/featured-works/order", api.SetFeaturedWorksOrder)
	}

	return r
}
