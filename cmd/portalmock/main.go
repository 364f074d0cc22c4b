package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kampusku_mobile/internals/configs"
	"kampusku_mobile/internals/mockportal"
)

func main() {
	configs.LoadEnv()

	port := configs.GetEnv("PORT", "8080")
	portal := mockportal.New()

	// Start server non-blocking
	go func() {
		log.Printf("✅ Mock portal listening on :%s", port)
		if err := portal.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = portal.App.ShutdownWithContext(ctx)
}
