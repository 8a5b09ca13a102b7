package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	appConfig "things-service/internal/config"
	"things-service/internal/models"
	"things-service/internal/services/database"
	"things-service/internal/services/records"
	s3service "things-service/internal/services/s3"
	"things-service/internal/utils"
)

// Uploader stores an object under key.
type Uploader interface {
	UploadFile(ctx context.Context, key string, data []byte, contentType string) error
}

// ExportHandler writes a JSON snapshot of the things table to S3.
type ExportHandler struct {
	service  *records.Service
	uploader Uploader
	prefix   string
	db       database.Gateway
}

// NewExportHandler loads configuration and connects to the database and S3.
func NewExportHandler(ctx context.Context) (*ExportHandler, error) {
	cfg, err := appConfig.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load app config: %w", err)
	}

	uploader, err := s3service.NewService(ctx, cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	h := NewExportHandlerWith(records.NewService(db), uploader, cfg.ExportPrefix)
	h.db = db
	return h, nil
}

// NewExportHandlerWith creates an export handler from its parts.
func NewExportHandlerWith(service *records.Service, uploader Uploader, prefix string) *ExportHandler {
	return &ExportHandler{service: service, uploader: uploader, prefix: prefix}
}

// ExportSnapshot is the object written to S3.
type ExportSnapshot struct {
	ExportedAt string         `json:"exported_at"`
	Count      int            `json:"count"`
	Things     []models.Thing `json:"things"`
}

// ExportResponse is the response for an export request.
type ExportResponse struct {
	Message string `json:"message"`
	Key     string `json:"key"`
	Count   int    `json:"count"`
}

// Handle exports every thing and reports the object key.
func (h *ExportHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.FromContext(ctx)
	headers := corsHeaders("POST,OPTIONS", "application/json")

	if request.HTTPMethod == http.MethodOptions {
		return preflightResponse(headers), nil
	}

	result, err := h.service.ListAll(ctx)
	if err != nil {
		logger.Error("Export failed to list things", utils.Error(err))
		return errorResponse(headers, http.StatusInternalServerError, "Failed to list things")
	}

	data, err := json.Marshal(ExportSnapshot{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(result.Things),
		Things:     result.Things,
	})
	if err != nil {
		return errorResponse(headers, http.StatusInternalServerError, "Failed to encode snapshot")
	}

	key := path.Join(h.prefix, "things-"+uuid.New().String()+".json")
	if err := h.uploader.UploadFile(ctx, key, data, "application/json"); err != nil {
		logger.Error("Export failed to upload snapshot", utils.String("key", key), utils.Error(err))
		return errorResponse(headers, http.StatusInternalServerError, "Failed to upload snapshot")
	}

	logger.Info("Exported things",
		utils.String("key", key),
		utils.Int("count", len(result.Things)))

	body, _ := json.Marshal(ExportResponse{
		Message: fmt.Sprintf("Exported %d things", len(result.Things)),
		Key:     key,
		Count:   len(result.Things),
	})

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       string(body),
	}, nil
}

// Close releases the database connection pool.
func (h *ExportHandler) Close() {
	if h.db != nil {
		h.db.Close()
	}
}
