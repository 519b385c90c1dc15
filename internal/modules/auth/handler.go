package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixitnow/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler with injected service
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	api.GET("/users/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.PUT("/me", h.UpdateProfile)
		userGroup.POST("/me/change-password", h.ChangePassword)
	}
}

// Register создаёт новый аккаунт на платформе.
// @Summary		Register a user
// @Description	Creates a customer or provider account. Email must be unique across the platform.
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"Registration payload (email, password, name, phone, role)"
// @Success		200	{object}	AuthResponse
// @Failure		400	{object}	map[string]interface{} "Malformed request body"
// @Failure		409	{object}	map[string]interface{} "Email already in use"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "Conflict", "Email already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to register user")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		Token:     token,
	})
}

// Login авторизует пользователя по email и паролю.
// @Summary		Log in
// @Description	Verifies email and password and returns the user record with a session token.
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"Credentials (email, password)"
// @Success		200	{object}	AuthResponse
// @Failure		400	{object}	map[string]interface{} "Malformed request body"
// @Failure		401	{object}	map[string]interface{} "Invalid email or password"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to login")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		Token:     token,
	})
}

// GetByID возвращает публичный профиль пользователя.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid user ID")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "Not Found", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetMe возвращает профиль текущего пользователя.
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "Not Found", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile обновляет имя и телефон текущего пользователя.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "Not Found", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Could not update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword меняет пароль после проверки текущего.
func (h *Handler) ChangePassword(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Unauthorized", "Current password is incorrect")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "Not Found", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Could not change password")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
