package http_api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alpharadar/alpharadar/internal/models"
)

// HealthResponse is returned by the /health endpoint
type HealthResponse struct {
	Status      string    `json:"status"`
	Subscribers int       `json:"subscribers"`
	Wallets     int       `json:"wallets"`
	Tracked     int       `json:"tracked"`
	Ticks       uint64    `json:"ticks"`
	LastTick    time.Time `json:"last_tick"`
}

// SubscriptionsResponse lists the wallets a subscriber watches
type SubscriptionsResponse struct {
	Subscriber models.SubscriberID `json:"subscriber"`
	Wallets    []models.Wallet     `json:"wallets"`
}

// health is a handler for the /health endpoint.
func (s *HTTPServer) health(c *gin.Context) {
	st := s.radar.Status()
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Subscribers: st.Subscribers,
		Wallets:     st.Wallets,
		Tracked:     st.Tracked,
		Ticks:       st.Ticks,
		LastTick:    st.LastTick,
	})
}

// subscriptions is a handler for the /subscriptions/:subscriber endpoint.
func (s *HTTPServer) subscriptions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("subscriber"), 10, 64)
	if err != nil {
		s.logger.Debug("Invalid subscriber id", "subscriber", c.Param("subscriber"), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "subscriber must be an integer id"})
		return
	}

	subscriber := models.SubscriberID(id)
	c.JSON(http.StatusOK, SubscriptionsResponse{
		Subscriber: subscriber,
		Wallets:    s.radar.ListWallets(subscriber),
	})
}
