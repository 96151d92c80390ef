package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"woosync/internal/actions"
	"woosync/internal/documents"
	"woosync/internal/logger"
	"woosync/internal/models"
	"woosync/internal/validation"
)

type ProductHandler struct {
	repo      *documents.Repository
	fetcher   *actions.ProductFetcher
	validator *validation.Validator
	logger    *logger.Logger
}

func NewProductHandler(repo *documents.Repository, fetcher *actions.ProductFetcher, validator *validation.Validator, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		repo:      repo,
		fetcher:   fetcher,
		validator: validator,
		logger:    logger,
	}
}

type productInput struct {
	WooID int64 `json:"wooId"`
}

func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	products, total, err := h.repo.ListProducts(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error("Failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.repo.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.documentError(c, err, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Create makes an empty product document linked to a WooCommerce id. The
// synchronized fields stay empty until the first fetch.
func (h *ProductHandler) Create(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{WooID: input.WooID}
	if errs := h.validator.ValidateProduct(&product); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Messages(errs), "fields": errs})
		return
	}

	if err := h.repo.CreateProduct(c.Request.Context(), &product); err != nil {
		h.logger.Error("Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// Update changes the editor-owned WooCommerce id only.
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.WooID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wooId must be a positive integer"})
		return
	}

	if err := h.repo.SetWooID(c.Request.Context(), id, input.WooID); err != nil {
		h.documentError(c, err, "Failed to update product")
		return
	}

	product, err := h.repo.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.documentError(c, err, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.repo.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.documentError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// Fetch runs the fetch action with the posted form values. The form carries
// the document id as "_id"; an unsaved document has none.
func (h *ProductHandler) Fetch(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	respond(c, h.fetcher.Fetch(c.Request.Context(), form))
}

// FetchDocument runs the fetch action for a saved document. Posted values
// override the stored wooId.
func (h *ProductHandler) FetchDocument(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}

	product, err := h.repo.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.documentError(c, err, "Failed to fetch product")
		return
	}

	form[actions.FieldDocumentID] = product.ID
	if _, set := form[actions.FieldWooID]; !set {
		form[actions.FieldWooID] = product.WooID
	}
	respond(c, h.fetcher.Fetch(c.Request.Context(), form))
}

func (h *ProductHandler) FetchStatus(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.fetcher.Status(c.Request.Context(), form)})
}

func (h *ProductHandler) documentError(c *gin.Context, err error, message string) {
	if errors.Is(err, documents.ErrDocumentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	h.logger.Error("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
