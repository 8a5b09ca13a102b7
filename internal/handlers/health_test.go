package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"things-service/internal/services/records/recordstest"
	"things-service/internal/utils"
)

func TestHealthHandler(t *testing.T) {
	down := recordstest.New()
	down.HealthErr = errors.New("no route to host")

	tests := []struct {
		name       string
		handler    *HealthHandler
		wantCode   int
		wantStatus string
		wantDB     string
	}{
		{"connected", NewHealthHandlerWithDB(recordstest.New(), "prod"), http.StatusOK, "healthy", "connected"},
		{"disconnected", NewHealthHandlerWithDB(down, "prod"), http.StatusServiceUnavailable, "degraded", "disconnected"},
		{"not configured", NewHealthHandlerWithDB(nil, ""), http.StatusOK, "healthy", "not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.handler.Handle(context.Background(), events.APIGatewayProxyRequest{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var body HealthResponse
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantDB, body.Database)
			assert.Equal(t, "things-service", body.Service)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}

func TestNewHealthHandler_LogsDatabaseFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	previous := utils.Logger
	utils.Logger = zap.New(core)
	t.Cleanup(func() { utils.Logger = previous })

	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("STAGE", "test")

	h, err := NewHealthHandler(context.Background())
	require.NoError(t, err)
	defer h.Close()

	entries := logs.FilterMessage("Health check running without database").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "oracle", entries[0].ContextMap()["driver"])
	assert.Contains(t, entries[0].ContextMap()["error"], "unsupported database driver")

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)

	var body HealthResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "not configured", body.Database)
	assert.Equal(t, "test", body.Stage)
}
