package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	thememodels "io.winapps.portfolio/internal/models/theme"
	"io.winapps.portfolio/internal/theme"
)

// ThemeHandler keeps the visitor's color scheme in a cookie.
type ThemeHandler struct {
	secureCookie bool
}

func NewThemeHandler(secureCookie bool) *ThemeHandler {
	return &ThemeHandler{secureCookie: secureCookie}
}

func (h *ThemeHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, thememodels.ThemeResponse{Mode: string(h.current(c))})
}

func (h *ThemeHandler) Toggle(c *gin.Context) {
	mode := h.current(c).Toggle()
	h.persist(c, mode)
	c.JSON(http.StatusOK, thememodels.ThemeResponse{Mode: string(mode)})
}

func (h *ThemeHandler) Set(c *gin.Context) {
	var req thememodels.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	mode, err := theme.Parse(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.persist(c, mode)
	c.JSON(http.StatusOK, thememodels.ThemeResponse{Mode: string(mode)})
}

func (h *ThemeHandler) current(c *gin.Context) theme.Mode {
	saved, _ := c.Cookie(theme.CookieName)
	return theme.Restore(saved)
}

func (h *ThemeHandler) persist(c *gin.Context, mode theme.Mode) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(theme.CookieName, string(mode), theme.CookieMaxAge, "/", "", h.secureCookie, false)
}
