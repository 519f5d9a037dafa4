package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamp/go-store-api/internal/application"
	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	"github.com/rizkyamp/go-store-api/pkg/response"
	"github.com/rizkyamp/go-store-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// productRequest serves both create and update: name and price are
// required even though update is semantically partial; description is
// applied only when present in the payload.
type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required,gt=0"`
}

const msgProductFieldsRequired = "Name and price are required fields."

var productMessages = validation.Messages{
	"required": msgProductFieldsRequired,
	"price.gt": "Price must be a greater than zero.",
}

// Create handles POST /api/products (admin only).
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Resolve(err, productMessages, msgProductFieldsRequired))
		return
	}

	p, err := h.Svc.Create(req.Name, req.Description, *req.Price)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	response.JSON(c, response.Envelope{
		Status:  http.StatusCreated,
		Message: "Product created successfully.",
		Data:    productView(p),
	})
}

// GetAll handles GET /api/products with optional name/price filters,
// pagination and sorting. Defaults: page=1, size=10, sort=createdAt desc.
func (h *ProductHandler) GetAll(c *gin.Context) {
	filters := application.ProductFilters{Name: c.Query("name")}
	if raw := c.Query("price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.Price = &v
		}
	}

	pagination := application.Pagination{
		Page: intQuery(c, "page", 1),
		Size: intQuery(c, "size", 10),
	}
	sort := application.Sort{
		Field:     c.DefaultQuery("sort", "createdAt"),
		Direction: c.DefaultQuery("direction", "desc"),
	}

	page, err := h.Svc.GetAll(filters, pagination, sort)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	data := make([]gin.H, 0, len(page.Data))
	for i := range page.Data {
		data = append(data, productView(&page.Data[i]))
	}

	total := page.Total
	response.JSON(c, response.Envelope{
		Status:     http.StatusOK,
		Message:    "Products retrieved successfully.",
		Data:       data,
		Total:      &total,
		Pagination: page.Pagination,
		Sort:       page.Sort,
	})
}

// Update handles PUT /api/products/:id (admin only).
func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Resolve(err, productMessages, msgProductFieldsRequired))
		return
	}

	p, err := h.Svc.Update(c.Param("id"), application.ProductUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	})
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	response.JSON(c, response.Envelope{
		Status:  http.StatusOK,
		Message: "Product updated successfully.",
		Data:    productView(p),
	})
}

// Delete handles DELETE /api/products/:id (admin only).
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		response.ServiceError(c, err)
		return
	}

	response.JSON(c, response.Envelope{
		Status:  http.StatusOK,
		Message: "Product deleted successfully.",
	})
}

func productView(p *entity.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
}

// intQuery parses a positive integer query parameter, falling back to
// def for anything missing, malformed or non-positive.
func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
