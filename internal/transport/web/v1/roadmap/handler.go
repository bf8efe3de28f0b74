package roadmap

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web/logx"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web/mw"
	v1 "github.com/sanketnagare/fpaidcourses/internal/transport/web/v1"
)

// Generator — ядро пайплайна (internal/roadmap.Service).
type Generator interface {
	Generate(ctx context.Context, url string) (*domain.RoadmapResult, error)
}

// ConfigChecker — обязательные ключи проверяем до запуска пайплайна.
type ConfigChecker interface {
	Missing() []string
}

type Handler struct {
	Log       *log.Logger
	Generator Generator
	Config    ConfigChecker
}

type generateRequest struct {
	URL string `json:"url"`
}

// Generate godoc
// @Summary      Generate a free learning roadmap
// @Description  Превращает URL платного курса в roadmap из бесплатных ресурсов
// @Tags         roadmap
// @Accept       json
// @Produce      json
// @Param        request  body  generateRequest  true  "course url"
// @Success      200  {object}  domain.APIEnvelope{response=domain.RoadmapResult}
// @Failure      400  {object}  domain.APIEnvelope
// @Failure      502  {object}  domain.APIEnvelope
// @Failure      503  {object}  domain.APIEnvelope
// @Router       /v1/roadmap [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	const op = "roadmap.generate"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	url := strings.TrimSpace(req.URL)
	if !domain.ValidCourseURL(url) {
		logx.Warn(h.Log, reqID, op, "invalid url", "url", url)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if missing := h.Config.Missing(); len(missing) > 0 {
		logx.Error(h.Log, reqID, op, "missing config", domain.ErrMissingConfig, "keys", strings.Join(missing, ","))
		v1.WriteDomainError(w, r, domain.ErrMissingConfig)
		return
	}

	logx.Info(h.Log, reqID, op, "start", "url", url)
	result, err := h.Generator.Generate(r.Context(), url)
	if err != nil {
		logx.Error(h.Log, reqID, op, "pipeline failed", err, "url", url)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok",
		"topics", result.Course.TotalTopics, "platform", result.Course.Platform)
	v1.WriteOKResponse(w, r, result)
}
