package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	appConfig "things-service/internal/config"
	"things-service/internal/models"
	"things-service/internal/services/database"
	"things-service/internal/services/records"
	"things-service/internal/utils"
)

const thingsMethods = "GET,POST,OPTIONS"

// ThingsHandler serves the Insert and ListAll operations.
type ThingsHandler struct {
	service *records.Service
	db      database.Gateway
}

// NewThingsHandler loads configuration, connects to the database and
// prepares the things table.
func NewThingsHandler(ctx context.Context) (*ThingsHandler, error) {
	logger := utils.GetLogger()

	cfg, err := appConfig.Load()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	service := records.NewService(db)
	if err := service.Prepare(ctx); err != nil {
		// Insert and ListAll retry schema creation.
		logger.Warn("Failed to prepare things table", utils.Error(err))
	}

	return &ThingsHandler{service: service, db: db}, nil
}

// NewThingsHandlerWithService creates a handler around an existing service.
func NewThingsHandlerWithService(service *records.Service) *ThingsHandler {
	return &ThingsHandler{service: service}
}

// HandleInsert inserts the thing named by the "thing" query parameter.
// The event is taken raw so the response can echo it unchanged.
func (h *ThingsHandler) HandleInsert(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	logger := utils.FromContext(ctx)
	headers := corsHeaders(thingsMethods, "application/json")

	request, err := parseProxyRequest(event)
	if err != nil {
		return errorResponse(headers, http.StatusBadRequest, "Invalid event")
	}
	if request.HTTPMethod == http.MethodOptions {
		return preflightResponse(headers), nil
	}

	result, err := h.service.Insert(ctx, request.QueryStringParameters)
	if errors.Is(err, models.ErrMissingThing) {
		return textResponse(http.StatusOK, thingsMethods, models.MissingThingMessage)
	}
	if err != nil {
		logger.Error("Insert failed", utils.String("operation", "insert"), utils.Error(err))
		return errorResponse(headers, http.StatusInternalServerError, "Failed to insert thing")
	}

	logger.Info("Inserted thing",
		utils.String("operation", "insert"),
		utils.Int("count", len(result.Things)))

	return indentedResponse(headers, http.StatusOK, ThingsBody{
		Message: result.Message,
		Results: result.Things,
		Input:   event,
	})
}

// HandleList returns every thing.
func (h *ThingsHandler) HandleList(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	logger := utils.FromContext(ctx)
	headers := corsHeaders(thingsMethods, "application/json")

	request, err := parseProxyRequest(event)
	if err != nil {
		return errorResponse(headers, http.StatusBadRequest, "Invalid event")
	}
	if request.HTTPMethod == http.MethodOptions {
		return preflightResponse(headers), nil
	}

	result, err := h.service.ListAll(ctx)
	if err != nil {
		logger.Error("List failed", utils.String("operation", "list"), utils.Error(err))
		return errorResponse(headers, http.StatusInternalServerError, "Failed to list things")
	}

	logger.Info("Listed things",
		utils.String("operation", "list"),
		utils.Int("count", len(result.Things)))

	return indentedResponse(headers, http.StatusOK, ThingsBody{
		Message: result.Message,
		Results: result.Things,
		Input:   event,
	})
}

// parseProxyRequest reads the fields the handlers route on. A missing
// event decodes as an empty request.
func parseProxyRequest(event json.RawMessage) (events.APIGatewayProxyRequest, error) {
	var request events.APIGatewayProxyRequest
	if len(event) == 0 {
		return request, nil
	}
	err := json.Unmarshal(event, &request)
	return request, err
}

// Close releases the database connection pool.
func (h *ThingsHandler) Close() {
	if h.db != nil {
		h.db.Close()
	}
}
