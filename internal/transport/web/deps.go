package web

import (
	"context"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

// Generator — ядро пайплайна, единственная бизнес-зависимость сервера.
type Generator interface {
	Generate(ctx context.Context, url string) (*domain.RoadmapResult, error)
}

// ConfigChecker — проверка обязательных ключей для health и roadmap.
type ConfigChecker interface {
	Missing() []string
}
