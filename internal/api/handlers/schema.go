package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"woosync/internal/logger"
	"woosync/internal/schema"
)

type SchemaHandler struct {
	registry schema.Registry
	logger   *logger.Logger
}

func NewSchemaHandler(registry schema.Registry, logger *logger.Logger) *SchemaHandler {
	return &SchemaHandler{
		registry: registry,
		logger:   logger,
	}
}

func (h *SchemaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.registry})
}

func (h *SchemaHandler) Get(c *gin.Context) {
	documentType, ok := h.registry.Lookup(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schema type not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": documentType})
}

func (h *SchemaHandler) YAML(c *gin.Context) {
	out, err := h.registry.YAML()
	if err != nil {
		h.logger.Error("Failed to render schemas: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render schemas"})
		return
	}
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
}
