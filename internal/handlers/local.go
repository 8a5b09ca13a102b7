package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// ProxyFunc is an API Gateway handler taking the decoded event.
type ProxyFunc func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// RawProxyFunc is an API Gateway handler taking the event as received.
type RawProxyFunc func(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error)

// Raw adapts fn to take the undecoded event.
func (fn ProxyFunc) Raw() RawProxyFunc {
	return func(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
		request, err := parseProxyRequest(event)
		if err != nil {
			return errorResponse(corsHeaders("GET,POST,OPTIONS", "application/json"), http.StatusBadRequest, "Invalid event")
		}
		return fn(ctx, request)
	}
}

// HTTPHandler serves fn over plain net/http for local development.
func HTTPHandler(fn RawProxyFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, err := ProxyRequestFromHTTP(r)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		event, err := json.Marshal(request)
		if err != nil {
			http.Error(w, "Failed to encode event", http.StatusInternalServerError)
			return
		}

		response, err := fn(r.Context(), event)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		for key, value := range response.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(response.StatusCode)
		_, _ = io.WriteString(w, response.Body)
	}
}

// ProxyRequestFromHTTP converts r into the event API Gateway would deliver.
func ProxyRequestFromHTTP(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}

	request := events.APIGatewayProxyRequest{
		Resource:   r.URL.Path,
		Path:       r.URL.Path,
		HTTPMethod: r.Method,
		Body:       string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  uuid.New().String(),
			Stage:      "local",
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
			},
		},
	}

	if len(r.Header) > 0 {
		request.Headers = make(map[string]string, len(r.Header))
		request.MultiValueHeaders = make(map[string][]string, len(r.Header))
		for key, values := range r.Header {
			request.Headers[key] = values[0]
			request.MultiValueHeaders[key] = values
		}
	}

	// API Gateway sends null rather than {} when there is no query string.
	if query := r.URL.Query(); len(query) > 0 {
		request.QueryStringParameters = make(map[string]string, len(query))
		request.MultiValueQueryStringParameters = make(map[string][]string, len(query))
		for key, values := range query {
			request.QueryStringParameters[key] = values[0]
			request.MultiValueQueryStringParameters[key] = values
		}
	}

	return request, nil
}
