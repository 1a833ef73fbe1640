package handlers

import (
	"context"
	"net/http"
	"time"

	"gest35bi/logger"
	"gest35bi/models"
	"gest35bi/utils"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		logger.ForContext(r.Context()).WithError(err).Warn("healthcheck failed")
		utils.HandleJSONResponse(w, models.StatusResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.HandleJSONResponse(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}
