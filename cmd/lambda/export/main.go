// Export Lambda entry point
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"things-service/internal/handlers"
	"things-service/internal/utils"
)

func main() {
	_ = utils.InitLogger(os.Getenv("LOG_LEVEL"))
	defer utils.Sync()

	handler, err := handlers.NewExportHandler(context.Background())
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}

	lambda.StartWithOptions(handler.Handle, lambda.WithEnableSIGTERM(handler.Close))
}
