package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	handlers "github.com/rizkyamp/go-store-api/internal/interface/http"
	"github.com/rizkyamp/go-store-api/internal/interface/middleware"
	"github.com/rizkyamp/go-store-api/pkg/blacklist"
	"github.com/rizkyamp/go-store-api/pkg/helpers"
)

// AuthModule wires the account routes.
// Admin only: POST /api/auth/register-admin, POST /api/auth/register-viewer
// Public: POST /api/auth/login
// Any valid token: POST /api/auth/logout
type AuthModule struct {
	Handler   *handlers.AuthHandler
	JWT       *helpers.JWTManager
	Blacklist *blacklist.Registry
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, bl *blacklist.Registry) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Blacklist: bl}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	adminOnly := middleware.AuthRole(m.JWT, m.Blacklist, entity.RoleAdmin)

	rg.POST("/auth/register-admin", adminOnly, m.Handler.RegisterAdmin)
	rg.POST("/auth/register-viewer", adminOnly, m.Handler.RegisterViewer)
	rg.POST("/auth/login", m.Handler.Login)
	rg.POST("/auth/logout", middleware.Auth(m.JWT, m.Blacklist), m.Handler.Logout)
}
