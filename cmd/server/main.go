// Command server runs the tuition inquiry HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/rajdhanitech/tuition-backend/internal/app"
)

func main() {
	// Missing .env is fine; production supplies real environment variables.
	_ = godotenv.Load()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
