package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"woosync/internal/actions"
	"woosync/internal/documents"
	"woosync/internal/logger"
	"woosync/internal/models"
	"woosync/internal/settings"
	"woosync/internal/validation"
)

type SettingsHandler struct {
	repo      *documents.Repository
	tester    *actions.ConnectionTester
	validator *validation.Validator
	logger    *logger.Logger
}

func NewSettingsHandler(repo *documents.Repository, tester *actions.ConnectionTester, validator *validation.Validator, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		repo:      repo,
		tester:    tester,
		validator: validator,
		logger:    logger,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	current, err := h.repo.GetSettings(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": current})
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var input models.Settings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := h.validator.ValidateSettings(&input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Messages(errs), "fields": errs})
		return
	}

	if err := h.repo.SaveSettings(c.Request.Context(), &input); err != nil {
		h.logger.Error("Failed to save settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": input})
}

// TestConnection runs the connection test against the posted form values,
// which may include unsaved edits.
func (h *SettingsHandler) TestConnection(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	respond(c, h.tester.Test(c.Request.Context(), form))
}

func (h *SettingsHandler) Debug(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	respond(c, actions.DebugSettings(form, h.logger))
}

func (h *SettingsHandler) Status(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.tester.Status(form)})
}

func bindForm(c *gin.Context) (settings.Form, bool) {
	form := settings.Form{}
	if c.Request.ContentLength == 0 {
		return form, true
	}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return form, true
}

// respond writes an action outcome. Failures are still notifications, so
// only a rejected concurrent run changes the status code.
func respond(c *gin.Context, n actions.Notification) {
	status := http.StatusOK
	if n.InProgress() {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"data": n})
}
