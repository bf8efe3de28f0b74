package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/sanketnagare/fpaidcourses/internal/config"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web/v1/health"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web/v1/roadmap"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, gen Generator, checker ConfigChecker) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	roadmapLog := log.New(logger.Writer(), logger.Prefix()+"[roadmap] ", logger.Flags())

	healthHandler := &health.Handler{Log: healthLog, Config: checker}
	roadmapHandler := &roadmap.Handler{Log: roadmapLog, Generator: gen, Config: checker}

	srv := &http.Server{
		Addr:    cfg.AppPort,
		Handler: newRouter(healthHandler, roadmapHandler, logger),
		// генерация ходит в несколько апстримов, WriteTimeout с запасом
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
