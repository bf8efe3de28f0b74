package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sanketnagare/fpaidcourses/internal/app"
)

// @title        fpaidcourses API
// @version      1.0.0
// @description  Transform paid course URLs into free learning roadmaps
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
