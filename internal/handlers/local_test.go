package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"things-service/internal/services/records/recordstest"
)

func TestProxyRequestFromHTTP(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/insert?thing=widget&tag=a&tag=b", strings.NewReader("payload"))
	r.Header.Set("X-Trace", "t1")

	request, err := ProxyRequestFromHTTP(r)
	require.NoError(t, err)

	assert.Equal(t, "/insert", request.Path)
	assert.Equal(t, http.MethodPost, request.HTTPMethod)
	assert.Equal(t, "payload", request.Body)
	assert.Equal(t, "widget", request.QueryStringParameters["thing"])
	assert.Equal(t, []string{"a", "b"}, request.MultiValueQueryStringParameters["tag"])
	assert.Equal(t, "t1", request.Headers["X-Trace"])
	assert.NotEmpty(t, request.RequestContext.RequestID)
}

func TestProxyRequestFromHTTP_NoQuery(t *testing.T) {
	request, err := ProxyRequestFromHTTP(httptest.NewRequest(http.MethodGet, "/things", nil))
	require.NoError(t, err)
	assert.Nil(t, request.QueryStringParameters)
}

func TestHTTPHandler_ServesThings(t *testing.T) {
	h := newThingsHandler(recordstest.New())
	mux := http.NewServeMux()
	mux.Handle("/insert", HTTPHandler(h.HandleInsert))
	mux.Handle("/things", HTTPHandler(h.HandleList))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insert", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Please provide thing query param!", rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insert?thing=widget", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body decodedBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.Equal(t, "widget", body.Results[0].Name)

	var input events.APIGatewayProxyRequest
	require.NoError(t, json.Unmarshal(body.Input, &input))
	assert.Equal(t, "/things", input.Path)
}

func TestHTTPHandler_ServesTypedHandler(t *testing.T) {
	health := NewHealthHandlerWithDB(recordstest.New(), "local")

	rec := httptest.NewRecorder()
	HTTPHandler(ProxyFunc(health.Handle).Raw()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"connected"`)
}

func TestHTTPHandler_HandlerError(t *testing.T) {
	failing := func(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, errors.New("boom")
	}

	rec := httptest.NewRecorder()
	HTTPHandler(failing).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
