package auth

import (
	"errors"
	"net/http"

	"bookease/internal/pkg/response"
	"bookease/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token, prefixed with "Bearer ".
const SessionCookie = "book_ease_token"

type Handler struct {
	service      *Service
	cookieMaxAge int
	cookieSecure bool
}

func NewHandler(service *Service, cookieMaxAge int, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/signin", h.Signin)
	rg.POST("/logout", h.Logout)
}

// RegisterProtectedRoutes mounts the endpoints that need a session.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Validation error", fieldErrors)
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "Email already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", UserPublic{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
	})
}

func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Validation error", fieldErrors)
		return
	}

	result, err := h.service.Signin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to sign in")
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "Bearer "+result.Token, h.cookieMaxAge, "/", "", h.cookieSecure, true)

	response.Success(c, http.StatusOK, "Signin successful", SigninResponse{
		ID:       result.User.ID,
		FullName: result.User.FullName,
		Email:    result.User.Email,
		Role:     string(result.User.Role),
		Token:    result.Token,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", UserPublic{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
	})
}
