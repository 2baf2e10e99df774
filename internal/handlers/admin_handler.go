package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/hashstructure/v2"
	"go.uber.org/zap"

	"io.winapps.portfolio/internal/auth"
	"io.winapps.portfolio/internal/content"
	"io.winapps.portfolio/internal/forms"
	"io.winapps.portfolio/internal/middleware"
	formmodels "io.winapps.portfolio/internal/models/admin_forms"
	loginmodels "io.winapps.portfolio/internal/models/login"
)

// SubmitGuard allows one in-flight submission per key.
type SubmitGuard interface {
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
}

// TokenMinter issues Firebase custom tokens. *auth.Client from the Firebase
// SDK satisfies it.
type TokenMinter interface {
	CustomToken(ctx context.Context, uid string) (string, error)
}

type AdminHandler struct {
	handlerLogger
	sessions *auth.Manager
	store    *content.Store
	guard    SubmitGuard
	minter   TokenMinter
	adminUID string
	now      func() time.Time
}

// NewAdminHandler creates the admin handler. guard and minter may be nil.
func NewAdminHandler(sessions *auth.Manager, store *content.Store, guard SubmitGuard, minter TokenMinter, adminUID string, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{
		handlerLogger: newHandlerLogger(logger),
		sessions:      sessions,
		store:         store,
		guard:         guard,
		minter:        minter,
		adminUID:      adminUID,
		now:           time.Now,
	}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginmodels.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your email and password."})
		return
	}

	ctx := c.Request.Context()
	session, err := h.sessions.Login(ctx, req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		logWithContext(h.logger, c, "warn", "rejected admin login")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Please try again."})
		return
	}
	if err != nil {
		h.logError(c, err, "failed to open admin session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred. Please try again."})
		return
	}

	resp := loginmodels.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
	if h.minter != nil {
		firebaseToken, err := h.minter.CustomToken(ctx, h.adminUID)
		if err != nil {
			h.logWarn(c, err, "failed to mint firebase custom token")
		} else {
			resp.FirebaseToken = firebaseToken
		}
	}

	logWithContext(h.logger, c, "info", "admin logged in", "session_id", session.ID)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /admin/logout.
func (h *AdminHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.TokenKey)
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		h.logError(c, err, "failed to end admin session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session handles GET /admin/session. Reaching it means the token is live.
func (h *AdminHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"sessionId":     c.GetString(middleware.SessionIDKey),
	})
}

func (h *AdminHandler) CreateProject(c *gin.Context) {
	var form formmodels.ProjectForm
	if !h.bindForm(c, forms.KindProject, &form) {
		return
	}
	if err := forms.ValidateProject(form); err != nil {
		h.rejectForm(c, forms.KindProject, err)
		return
	}

	key := forms.ProjectKey(form)
	record := forms.ProjectRecord(form, h.now())
	h.submit(c, forms.KindProject, content.CollectionProjects+":"+key, func(ctx context.Context) (string, interface{}, error) {
		if err := h.store.SaveProject(ctx, key, record); err != nil {
			return "", nil, err
		}
		record.ID = key
		return key, record, nil
	})
}

func (h *AdminHandler) CreateExperience(c *gin.Context) {
	var form formmodels.ExperienceForm
	if !h.bindForm(c, forms.KindExperience, &form) {
		return
	}
	if err := forms.ValidateExperience(form); err != nil {
		h.rejectForm(c, forms.KindExperience, err)
		return
	}

	record := forms.ExperienceRecord(form, h.now())
	h.submit(c, forms.KindExperience, fingerprintKey(content.CollectionExperience, form), func(ctx context.Context) (string, interface{}, error) {
		id, err := h.store.AddExperience(ctx, record)
		if err != nil {
			return "", nil, err
		}
		record.ID = id
		return id, record, nil
	})
}

func (h *AdminHandler) CreateEducation(c *gin.Context) {
	var form formmodels.EducationForm
	if !h.bindForm(c, forms.KindEducation, &form) {
		return
	}
	if err := forms.ValidateEducation(form); err != nil {
		h.rejectForm(c, forms.KindEducation, err)
		return
	}

	record := forms.EducationRecord(form, h.now())
	h.submit(c, forms.KindEducation, fingerprintKey(content.CollectionEducation, form), func(ctx context.Context) (string, interface{}, error) {
		id, err := h.store.AddEducation(ctx, record)
		if err != nil {
			return "", nil, err
		}
		record.ID = id
		return id, record, nil
	})
}

func (h *AdminHandler) CreateHobby(c *gin.Context) {
	var form formmodels.HobbyForm
	if !h.bindForm(c, forms.KindHobby, &form) {
		return
	}
	if err := forms.ValidateHobby(form); err != nil {
		h.rejectForm(c, forms.KindHobby, err)
		return
	}

	record := forms.HobbyRecord(form, h.now())
	h.submit(c, forms.KindHobby, fingerprintKey(content.CollectionHobbies, form), func(ctx context.Context) (string, interface{}, error) {
		id, err := h.store.AddHobby(ctx, record)
		if err != nil {
			return "", nil, err
		}
		record.ID = id
		return id, record, nil
	})
}

func (h *AdminHandler) bindForm(c *gin.Context, kind forms.Kind, form interface{}) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		h.logWarn(c, err, "malformed admin form", "kind", kind)
		c.JSON(http.StatusBadRequest, formmodels.SubmitResponse{Message: forms.FailureBanner(kind)})
		return false
	}
	return true
}

func (h *AdminHandler) rejectForm(c *gin.Context, kind forms.Kind, err error) {
	var missing *forms.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, formmodels.SubmitResponse{
			Message: forms.RequiredBanner(),
			Missing: missing.Fields,
		})
	case errors.Is(err, forms.ErrInvalidKey):
		c.JSON(http.StatusBadRequest, formmodels.SubmitResponse{
			Message: formmodels.Banner{Text: "Project ID may not contain '.', '#', '$', '[', ']' or '/'.", Type: formmodels.BannerError},
		})
	default:
		h.logError(c, err, "unexpected form validation error", "kind", kind)
		c.JSON(http.StatusBadRequest, formmodels.SubmitResponse{Message: forms.FailureBanner(kind)})
	}
}

// submit runs write while holding the guard for guardKey.
func (h *AdminHandler) submit(c *gin.Context, kind forms.Kind, guardKey string, write func(ctx context.Context) (string, interface{}, error)) {
	ctx := c.Request.Context()

	if h.guard != nil {
		release, ok, err := h.guard.Acquire(ctx, guardKey)
		if err != nil {
			h.logError(c, err, "failed to acquire submit guard", "kind", kind, "guard_key", guardKey)
			c.JSON(http.StatusInternalServerError, formmodels.SubmitResponse{Message: forms.FailureBanner(kind)})
			return
		}
		if !ok {
			c.JSON(http.StatusConflict, formmodels.SubmitResponse{
				Message: formmodels.Banner{Text: "This submission is already in progress.", Type: formmodels.BannerError},
			})
			return
		}
		defer release()
	}

	id, record, err := write(ctx)
	if err != nil {
		h.logError(c, err, "failed to save admin submission", "kind", kind)
		c.JSON(http.StatusInternalServerError, formmodels.SubmitResponse{Message: forms.FailureBanner(kind)})
		return
	}

	logWithContext(h.logger, c, "info", "admin submission saved", "kind", kind, "id", id)
	c.JSON(http.StatusCreated, formmodels.SubmitResponse{
		Message: forms.SuccessBanner(kind),
		ID:      id,
		Record:  record,
	})
}

// fingerprintKey identifies identical pushed submissions, which have no key
// until written.
func fingerprintKey(collection string, form interface{}) string {
	hash, err := hashstructure.Hash(form, hashstructure.FormatV2, nil)
	if err != nil {
		return collection
	}
	return fmt.Sprintf("%s:%x", collection, hash)
}
