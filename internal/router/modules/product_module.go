package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	handlers "github.com/rizkyamp/go-store-api/internal/interface/http"
	"github.com/rizkyamp/go-store-api/internal/interface/middleware"
	"github.com/rizkyamp/go-store-api/pkg/blacklist"
	"github.com/rizkyamp/go-store-api/pkg/helpers"
)

// ProductModule wires the catalog routes.
// Admin only: POST /api/products, PUT/DELETE /api/products/:id
// Any valid token: GET /api/products
type ProductModule struct {
	Handler   *handlers.ProductHandler
	JWT       *helpers.JWTManager
	Blacklist *blacklist.Registry
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.JWTManager, bl *blacklist.Registry) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt, Blacklist: bl}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	adminOnly := middleware.AuthRole(m.JWT, m.Blacklist, entity.RoleAdmin)

	rg.POST("/products", adminOnly, m.Handler.Create)
	rg.GET("/products", middleware.Auth(m.JWT, m.Blacklist), m.Handler.GetAll)
	rg.PUT("/products/:id", adminOnly, m.Handler.Update)
	rg.DELETE("/products/:id", adminOnly, m.Handler.Delete)
}
