package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"

	appConfig "things-service/internal/config"
	"things-service/internal/services/database"
	"things-service/internal/utils"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	db    database.Gateway
	stage string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(ctx context.Context) (*HealthHandler, error) {
	logger := utils.GetLogger()

	cfg, err := appConfig.Load()
	if err != nil {
		logger.Warn("Health check running without config", utils.Error(err))
		return &HealthHandler{}, nil // Return handler without DB
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Warn("Health check running without database",
			utils.String("driver", cfg.DBDriver),
			utils.Error(err))
		return &HealthHandler{stage: cfg.Stage}, nil // Return handler without DB
	}

	return &HealthHandler{db: db, stage: cfg.Stage}, nil
}

// NewHealthHandlerWithDB creates a health handler for an open gateway.
// A nil db reports the database as not configured.
func NewHealthHandlerWithDB(db database.Gateway, stage string) *HealthHandler {
	return &HealthHandler{db: db, stage: stage}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Stage     string `json:"stage"`
	Database  string `json:"database,omitempty"`
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := corsHeaders("GET,OPTIONS", "application/json")

	stage := h.stage
	if stage == "" {
		stage = "unknown"
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "things-service",
		Version:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
		Stage:     stage,
	}

	// Check database connectivity
	if h.db != nil {
		if err := h.db.HealthCheck(ctx); err != nil {
			response.Database = "disconnected"
			response.Status = "degraded"
		} else {
			response.Database = "connected"
		}
	} else {
		response.Database = "not configured"
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	body, _ := json.Marshal(response)

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}, nil
}

// Close cleans up resources.
func (h *HealthHandler) Close() {
	if h.db != nil {
		h.db.Close()
	}
}

// getEnvOrDefault returns environment variable or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
