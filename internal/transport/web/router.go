package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sanketnagare/fpaidcourses/internal/docs"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web/mw"
	v1 "github.com/sanketnagare/fpaidcourses/internal/transport/web/v1"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web/v1/health"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web/v1/roadmap"
)

func newRouter(hh *health.Handler, rh *roadmap.Handler, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// info
	mux.HandleFunc("GET /{$}", info)

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// roadmap
	mux.HandleFunc("POST /v1/roadmap", limitBody(1<<20, rh.Generate)) // 1MB лимит

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.CORS(mw.WithRequestID(mw.Logging(logger)(mux)))
}

func info(w http.ResponseWriter, r *http.Request) {
	v1.WriteOKData(w, r, map[string]any{
		"name":    "fpaidcourses API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": map[string]string{
			"health":   "/v1/healthz",
			"generate": "POST /v1/roadmap",
		},
	})
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
