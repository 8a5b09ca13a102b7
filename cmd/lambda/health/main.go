// Health Check Lambda entry point
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"things-service/internal/handlers"
	"things-service/internal/utils"
)

func main() {
	// Initialize logger
	_ = utils.InitLogger(os.Getenv("LOG_LEVEL"))
	defer utils.Sync()

	// Create handler
	handler, err := handlers.NewHealthHandler(context.Background())
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}

	// Start Lambda
	lambda.StartWithOptions(handler.Handle, lambda.WithEnableSIGTERM(handler.Close))
}
