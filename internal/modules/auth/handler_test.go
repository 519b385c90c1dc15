package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fixitnow/internal/domain"
)

func setupRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(service).RegisterPublicRoutes(api)
	return r
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Register_Conflict(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	userRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(true, nil)

	r := setupRouter(NewService(userRepo, jwtSvc))

	w := postJSON(r, "/api/auth/register", RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "p1secret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Conflict", body["error"])
	assert.Equal(t, "Email already in use", body["message"])
	assert.Equal(t, "/api/auth/register", body["path"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHandler_Register_ReturnsUserAndToken(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	userRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwtSvc.On("GenerateToken", int64(1), "CUSTOMER").Return("tok", nil)

	r := setupRouter(NewService(userRepo, jwtSvc))

	w := postJSON(r, "/api/auth/register", RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "p1secret",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "a@x.com", body["email"])
	assert.Equal(t, "tok", body["token"])
	// the credential never comes back
	assert.NotContains(t, body, "password")
	assert.NotContains(t, w.Body.String(), "p1secret")
}

func TestHandler_Login_Unauthorized(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("p1secret"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&domain.User{ID: 1, Email: "a@x.com", PasswordHash: string(hashed), Role: domain.RoleCustomer}, nil)

	r := setupRouter(NewService(userRepo, jwtSvc))

	w := postJSON(r, "/api/auth/login", LoginRequest{Email: "a@x.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, "Invalid email or password", body["message"])
	assert.Equal(t, "/api/auth/login", body["path"])
}

func TestHandler_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	userRepo.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)

	r := setupRouter(NewService(userRepo, jwtSvc))

	w := postJSON(r, "/api/auth/login", LoginRequest{Email: "ghost@x.com", Password: "whatever"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Register_InvalidBody(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	r := setupRouter(NewService(userRepo, jwtSvc))

	// missing required password
	w := postJSON(r, "/api/auth/register", map[string]string{"email": "a@x.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
