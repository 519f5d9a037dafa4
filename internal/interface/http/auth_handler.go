package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamp/go-store-api/internal/application"
	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	"github.com/rizkyamp/go-store-api/internal/interface/middleware"
	"github.com/rizkyamp/go-store-api/pkg/response"
	"github.com/rizkyamp/go-store-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,emailfmt"`
	Password string `json:"password" binding:"required,min=8"`
	Gender   string `json:"gender" binding:"required,oneof=Male Female"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const msgRegisterFieldsRequired = "All fields (name, email, password, gender) are required."

var registerMessages = validation.Messages{
	"required":       msgRegisterFieldsRequired,
	"email.emailfmt": "Invalid email format. example: example@example.com",
	"password.min":   "Password must be at least 8 characters long.",
	"gender.oneof":   "Gender must be one of the following: Male, Female.",
}

// RegisterAdmin handles POST /api/auth/register-admin (admin only).
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	h.register(c, h.Svc.RegisterAdmin, "Admin registered successfully")
}

// RegisterViewer handles POST /api/auth/register-viewer (admin only).
func (h *AuthHandler) RegisterViewer(c *gin.Context) {
	h.register(c, h.Svc.RegisterViewer, "Viewer registered successfully")
}

func (h *AuthHandler) register(c *gin.Context, create func(name, email, password string, gender entity.Gender) (*entity.User, error), message string) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Resolve(err, registerMessages, msgRegisterFieldsRequired))
		return
	}

	u, err := create(req.Name, req.Email, req.Password, entity.Gender(req.Gender))
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	response.JSON(c, response.Envelope{
		Status:  http.StatusCreated,
		Message: message,
		User: gin.H{
			"name":   u.Name,
			"email":  u.Email,
			"gender": u.Gender,
			"role":   u.Role,
		},
	})
}

// Login handles POST /api/auth/login. Field validation is deliberately
// absent: a missing email surfaces as the same lookup failure a wrong
// one does.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	token, u, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	response.JSON(c, response.Envelope{
		Status:  http.StatusOK,
		Message: "User logged in successfully",
		Token:   token,
		User: gin.H{
			"id":     u.ID,
			"name":   u.Name,
			"email":  u.Email,
			"gender": u.Gender,
			"role":   u.Role,
		},
	})
}

// Logout handles POST /api/auth/logout. The auth middleware has already
// vetted the token; it is re-read from the header because revocation
// needs the raw string.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		response.Err(c, http.StatusBadRequest, "No token provided!")
		return
	}

	h.Svc.Logout(token)

	response.JSON(c, response.Envelope{
		Status:  http.StatusOK,
		Message: "User logged out successfully",
	})
}
