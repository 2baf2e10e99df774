package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.portfolio/internal/content"
	pagemodels "io.winapps.portfolio/internal/models/pages"
	"io.winapps.portfolio/internal/profile"
	"io.winapps.portfolio/internal/render"
	"io.winapps.portfolio/internal/site"
)

const featuredCount = 3

// PagesHandler assembles the public pages from stored records and the static
// site content.
type PagesHandler struct {
	handlerLogger
	store    *content.Store
	site     *site.Content
	profile  profile.Reader
	markdown *render.Markdown
}

// NewPagesHandler creates the pages handler. profileReader may be nil.
func NewPagesHandler(store *content.Store, siteContent *site.Content, profileReader profile.Reader, markdown *render.Markdown, logger *zap.SugaredLogger) *PagesHandler {
	if siteContent == nil {
		siteContent = site.Default()
	}
	return &PagesHandler{
		handlerLogger: newHandlerLogger(logger),
		store:         store,
		site:          siteContent,
		profile:       profileReader,
		markdown:      markdown,
	}
}

func (h *PagesHandler) Home(c *gin.Context) {
	projects, err := h.store.ListProjects(c.Request.Context())
	if err != nil {
		h.logError(c, err, "failed to load projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, pagemodels.HomePage{
		Personal: h.site.Personal,
		Featured: content.Recent(projects, featuredCount),
		Tags:     content.AllTags(projects),
	})
}

func (h *PagesHandler) About(c *gin.Context) {
	ctx := c.Request.Context()

	experience, err := h.store.ListExperience(ctx)
	if err != nil {
		h.logError(c, err, "failed to load experience")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load experience"})
		return
	}
	education, err := h.store.ListEducation(ctx)
	if err != nil {
		h.logError(c, err, "failed to load education")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load education"})
		return
	}
	hobbies, err := h.store.ListHobbies(ctx)
	if err != nil {
		h.logError(c, err, "failed to load hobbies")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hobbies"})
		return
	}

	page := pagemodels.AboutPage{
		Personal:         h.site.Personal,
		Experience:       experience,
		Education:        content.SummarizeEducation(education),
		EducationHistory: education,
		Hobbies:          content.HobbyTitles(hobbies),
		Skills:           []string{},
	}

	// The profile document is optional decoration; the page renders without it.
	if h.profile != nil {
		if doc, err := h.profile.Profile(ctx); err != nil {
			h.logWarn(c, err, "failed to load profile")
		} else {
			page.Profile = doc
		}
		if skills, err := h.profile.Skills(ctx); err != nil {
			h.logWarn(c, err, "failed to load skills")
		} else if skills != nil {
			page.Skills = skills
		}
	}

	c.JSON(http.StatusOK, page)
}

// Projects handles GET /pages/projects?tag=.
func (h *PagesHandler) Projects(c *gin.Context) {
	projects, err := h.store.ListProjects(c.Request.Context())
	if err != nil {
		h.logError(c, err, "failed to load projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	active := c.Query("tag")
	if active == "" {
		active = content.AllTagsFilter
	}
	tags := append([]string{content.AllTagsFilter}, content.AllTags(projects)...)

	c.JSON(http.StatusOK, pagemodels.ProjectsPage{
		Projects:  content.FilterByTag(projects, active),
		Tags:      tags,
		ActiveTag: active,
	})
}

func (h *PagesHandler) ProjectDetail(c *gin.Context) {
	id := c.Param("id")
	project, err := h.store.GetProjectByID(c.Request.Context(), id)
	if err != nil {
		h.logError(c, err, "failed to load project", "project_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	overview, err := h.markdown.ToHTML(project.Details.Overview)
	if err != nil {
		h.logWarn(c, err, "failed to render project overview", "project_id", id)
	}

	c.JSON(http.StatusOK, pagemodels.ProjectDetailPage{
		Project:      *project,
		OverviewHTML: overview,
	})
}

func (h *PagesHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, pagemodels.ContactPage{Contact: h.site.Contact})
}
