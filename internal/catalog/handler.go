package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// GET /catalog/sauces
// --------------------------------------------------
//

func (h *Handler) ListSauces(c *gin.Context) {
	sauces, err := h.service.ListSauces(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load sauces"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sauces": sauces})
}

//
// --------------------------------------------------
// GET /catalog/packages
// --------------------------------------------------
//

func (h *Handler) ListPackages(c *gin.Context) {
	packages, err := h.service.ListPackages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load packages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

//
// --------------------------------------------------
// POST /admin/sauces
// --------------------------------------------------
//

func (h *Handler) CreateSauce(c *gin.Context) {
	var sauce Sauce
	if err := c.ShouldBindJSON(&sauce); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateSauce(c.Request.Context(), &sauce); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sauce": sauce})
}

//
// --------------------------------------------------
// POST /admin/sauces/:id/image
// --------------------------------------------------
//

func (h *Handler) UploadSauceImage(c *gin.Context) {
	sauceID := c.Param("id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file missing"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadSauceImage(
		c.Request.Context(),
		sauceID,
		file,
		fileHeader.Filename,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
