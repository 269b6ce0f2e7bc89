package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance-market-api/internal/database"
	"freelance-market-api/internal/realtime"
	"freelance-market-api/internal/stats"
	"freelance-market-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testCoordinator(t *testing.T) *realtime.PresenceCoordinator {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := realtime.NewConnectionRegistry()
	counter := realtime.NewViewerCounter(log)
	broadcaster := realtime.NewRoomBroadcaster(registry, log)
	return realtime.NewPresenceCoordinator(registry, counter, broadcaster, stats.NewProvider(db), log)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRoutes(testCoordinator(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRoutes(testCoordinator(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects/p-1/apply", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicBrowsingNeedsNoToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRoutes(testCoordinator(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
