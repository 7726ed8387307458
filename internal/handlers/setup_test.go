package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucasmtr/blog-platform/backend/internal/models"
	"github.com/lucasmtr/blog-platform/backend/internal/router"
	"github.com/lucasmtr/blog-platform/backend/pkg/config"
	"github.com/lucasmtr/blog-platform/backend/validators"
)

const testJWTSecret = "test-secret"

func setupServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		Port:      "0",
		JWTSecret: testJWTSecret,
		TokenTTL:  time.Hour,
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()
	router.SetupMiddleware(e)
	router.SetupRoutes(e, db, cfg)
	return e, db
}

func doRequest(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, e *echo.Echo, username, email, password string) {
	rec := doRequest(e, http.MethodPost, "/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func loginUser(t *testing.T, e *echo.Echo, email, password string) string {
	rec := doRequest(e, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}

func makeAdmin(t *testing.T, db *gorm.DB, email string) {
	err := db.Model(&models.User{}).Where("email = ?", email).Update("is_admin", true).Error
	require.NoError(t, err)
}

// adminToken registers and promotes an admin user, then logs them in
func adminToken(t *testing.T, e *echo.Echo, db *gorm.DB) string {
	registerUser(t, e, "admin", "admin@example.com", "adminpass")
	makeAdmin(t, db, "admin@example.com")
	return loginUser(t, e, "admin@example.com", "adminpass")
}

// userToken registers and logs in a regular user
func userToken(t *testing.T, e *echo.Echo) string {
	registerUser(t, e, "reader", "reader@example.com", "readerpass")
	return loginUser(t, e, "reader@example.com", "readerpass")
}

func createPost(t *testing.T, e *echo.Echo, token, title string) uint {
	rec := doRequest(e, http.MethodPost, "/posts", token, map[string]string{
		"title":   title,
		"content": "some content",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	post, ok := body["post"].(map[string]interface{})
	require.True(t, ok)
	return uint(post["id"].(float64))
}
