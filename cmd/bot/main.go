package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/avc-dev/terabis-bot/internal/app"
)

func main() {
	// .env удобен в разработке, в проде переменные приходят из окружения
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
