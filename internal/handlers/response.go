// Package handlers provides API Gateway handlers for the things service.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"things-service/internal/models"
)

// ThingsBody is the JSON body returned by Insert and ListAll. Input is the
// received event, byte for byte apart from whitespace.
type ThingsBody struct {
	Message string          `json:"message"`
	Results []models.Thing  `json:"results"`
	Input   json.RawMessage `json:"input"`
}

// corsHeaders returns the response headers for the given methods and content type.
func corsHeaders(methods, contentType string) map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Access-Control-Allow-Methods": methods,
		"Content-Type":                 contentType,
	}
}

// preflightResponse answers a CORS preflight request.
func preflightResponse(headers map[string]string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
	}
}

// textResponse creates a plain-text response.
func textResponse(statusCode int, methods, text string) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    corsHeaders(methods, "text/plain; charset=utf-8"),
		Body:       text,
	}, nil
}

// indentedResponse serializes v as two-space indented JSON.
func indentedResponse(headers map[string]string, statusCode int, v interface{}) (events.APIGatewayProxyResponse, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResponse(headers, http.StatusInternalServerError, "Failed to encode response")
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}, nil
}

// errorResponse creates an error response.
func errorResponse(headers map[string]string, statusCode int, message string) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(map[string]string{
		"error":   http.StatusText(statusCode),
		"message": message,
	})

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}, nil
}
