package main

import (
	"log"

	"github.com/MrSnakeDoc/linkhub/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ linkhub failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ linkhub stopped with error: %v", err)
	}
}
