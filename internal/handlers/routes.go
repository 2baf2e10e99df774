package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.portfolio/internal/content"
)

// Handlers is everything RegisterRoutes mounts. AdminAuth guards the admin
// routes other than login.
type Handlers struct {
	Admin       *AdminHandler
	Pages       *PagesHandler
	Collections *CollectionsHandler
	Theme       *ThemeHandler
	Contact     *ContactHandler
	Subscribe   *SubscribeHandler
	AdminAuth   gin.HandlerFunc
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/contact", h.Contact.Send)

	v1 := router.Group("/api/v1")
	{
		pages := v1.Group("/pages")
		{
			pages.GET("/home", h.Pages.Home)
			pages.GET("/about", h.Pages.About)
			pages.GET("/projects", h.Pages.Projects)
			pages.GET("/projects/:id", h.Pages.ProjectDetail)
			pages.GET("/contact", h.Pages.Contact)
		}

		for _, collection := range content.Collections {
			v1.GET("/"+collection, h.Collections.List(collection))
		}
		v1.GET("/projects/:id", h.Collections.GetProject)

		v1.GET("/subscribe/:collection", h.Subscribe.Stream)

		themes := v1.Group("/theme")
		{
			themes.GET("", h.Theme.Get)
			themes.PUT("", h.Theme.Set)
			themes.POST("/toggle", h.Theme.Toggle)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/login", h.Admin.Login)

			protected := admin.Group("")
			protected.Use(h.AdminAuth)
			{
				protected.POST("/logout", h.Admin.Logout)
				protected.GET("/session", h.Admin.Session)
				protected.POST("/projects", h.Admin.CreateProject)
				protected.POST("/experience", h.Admin.CreateExperience)
				protected.POST("/education", h.Admin.CreateEducation)
				protected.POST("/hobbies", h.Admin.CreateHobby)
				protected.GET("/messages", h.Contact.Inbox)
			}
		}
	}
}
