// List things Lambda entry point
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
	handler, err := handlers.NewThingsHandler(context.Background())
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}

	// Start Lambda; the pool is closed when the runtime shuts the instance down
	lambda.StartWithOptions(handler.HandleList, lambda.WithEnableSIGTERM(func() {
		handler.Close()
		utils.Sync()
	}))
}
