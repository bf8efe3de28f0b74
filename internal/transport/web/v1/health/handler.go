package health

import (
	"log"
	"net/http"

	"github.com/sanketnagare/fpaidcourses/internal/transport/web/logx"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web/mw"
	v1 "github.com/sanketnagare/fpaidcourses/internal/transport/web/v1"
)

// ConfigChecker отдаёт список отсутствующих обязательных ключей.
type ConfigChecker interface {
	Missing() []string
}

type Handler struct {
	Log    *log.Logger
	Config ConfigChecker
}

type status struct {
	Status  string   `json:"status"`
	Missing []string `json:"missing,omitempty"`
}

// Liveness godoc
// @Summary      Liveness probe
// @Description  Проверка, жив ли сервис (не зависит от апстримов)
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.APIEnvelope{data=string}
// @Router       /v1/healthz [get]
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	const op = "health.liveness"
	reqID := mw.RequestIDFromCtx(r.Context())

	logx.Info(h.Log, reqID, op, "ok")
	v1.WriteOKData(w, r, "ok")
}

// Readiness godoc
// @Summary      Readiness probe
// @Description  Готовность: сконфигурированы ли обязательные ключи API
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.APIEnvelope{data=health.status}
// @Router       /v1/readyz [get]
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	const op = "health.readiness"
	reqID := mw.RequestIDFromCtx(r.Context())

	missing := h.Config.Missing()
	if len(missing) > 0 {
		logx.Warn(h.Log, reqID, op, "degraded", "missing", missing)
		v1.WriteOKData(w, r, status{Status: "degraded", Missing: missing})
		return
	}

	logx.Info(h.Log, reqID, op, "ready")
	v1.WriteOKData(w, r, status{Status: "ready"})
}
