package http_api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpharadar/alpharadar/internal/models"
	"github.com/alpharadar/alpharadar/pkg/logger"
)

type mockRadar struct {
	status  models.Status
	wallets map[models.SubscriberID][]models.Wallet
}

func (m *mockRadar) Run(ctx context.Context) {}

func (m *mockRadar) HandleCommand(ctx context.Context, subscriber models.SubscriberID, text string) string {
	return ""
}

func (m *mockRadar) Follow(subscriber models.SubscriberID, wallet string) (models.Wallet, error) {
	return models.Wallet(wallet), nil
}

func (m *mockRadar) ListWallets(subscriber models.SubscriberID) []models.Wallet {
	if w, ok := m.wallets[subscriber]; ok {
		return w
	}
	return []models.Wallet{}
}

func (m *mockRadar) Status() models.Status {
	return m.status
}

func newTestServer() *HTTPServer {
	gin.SetMode(gin.TestMode)
	radar := &mockRadar{
		status:  models.Status{Subscribers: 2, Wallets: 3, Tracked: 1, Ticks: 7},
		wallets: map[models.SubscriberID][]models.Wallet{42: {"WALLET_A", "WALLET_B"}},
	}
	return NewHTTPServer(radar, 0, logger.NewNop())
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Subscribers)
	assert.Equal(t, 3, resp.Wallets)
	assert.Equal(t, 1, resp.Tracked)
	assert.Equal(t, uint64(7), resp.Ticks)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSubscriptions(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name        string
		path        string
		wantCode    int
		wantWallets []models.Wallet
	}{
		{name: "known subscriber", path: "/api/v1/subscriptions/42", wantCode: http.StatusOK, wantWallets: []models.Wallet{"WALLET_A", "WALLET_B"}},
		{name: "unknown subscriber", path: "/api/v1/subscriptions/7", wantCode: http.StatusOK, wantWallets: []models.Wallet{}},
		{name: "bad id", path: "/api/v1/subscriptions/abc", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var resp SubscriptionsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantWallets, resp.Wallets)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/health", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestShutdownWithoutStart(t *testing.T) {
	s := newTestServer()
	assert.NoError(t, s.Shutdown())
}
