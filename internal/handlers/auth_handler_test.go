package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance-market-api/internal/database"
	"freelance-market-api/internal/middleware"
	"freelance-market-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func postJSON(r *gin.Engine, path, token string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupAndLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.POST("/api/signup", Signup)
	r.POST("/api/login", Login)

	w := postJSON(r, "/api/signup", "", map[string]string{
		"username": "alice",
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/login", "", map[string]string{
		"username": "alice",
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "alice", resp.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.POST("/api/signup", Signup)
	r.POST("/api/login", Login)

	w := postJSON(r, "/api/signup", "", map[string]string{
		"username": "bob",
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/login", "", map[string]string{
		"username": "bob",
		"password": "wrong-password-entirely",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.POST("/api/login", Login)

	w := postJSON(r, "/api/login", "", map[string]string{
		"username": "nobody",
		"password": "whatever-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_BlacklistsToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.POST("/api/signup", Signup)
	r.POST("/api/login", Login)
	protected := r.Group("", middleware.JWTAuthMiddleware())
	protected.POST("/api/logout", Logout)
	protected.GET("/api/users", GetAllUsers)

	w := postJSON(r, "/api/signup", "", map[string]string{
		"username": "carol",
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = postJSON(r, "/api/login", "", map[string]string{
		"username": "carol",
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = postJSON(r, "/api/logout", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The token no longer works after logout
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
