package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"companynews/internal/handlers"
)

func main() {
	lambda.Start(handlers.Health)
}
