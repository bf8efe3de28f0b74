package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sanketnagare/fpaidcourses/internal/cache"
	"github.com/sanketnagare/fpaidcourses/internal/config"
	"github.com/sanketnagare/fpaidcourses/internal/domain"
	"github.com/sanketnagare/fpaidcourses/internal/extract/gemini"
	"github.com/sanketnagare/fpaidcourses/internal/roadmap"
	"github.com/sanketnagare/fpaidcourses/internal/scrape/firecrawl"
	"github.com/sanketnagare/fpaidcourses/internal/search"
	"github.com/sanketnagare/fpaidcourses/internal/search/serper"
	"github.com/sanketnagare/fpaidcourses/internal/transport/web"
	"github.com/sanketnagare/fpaidcourses/internal/video"
	"github.com/sanketnagare/fpaidcourses/internal/video/hybrid"
	"github.com/sanketnagare/fpaidcourses/internal/video/probe"
	"github.com/sanketnagare/fpaidcourses/internal/video/ytsearch"
)

// Интервал фоновой уборки кешей; для корректности не нужен,
// только ограничивает память при редких чтениях.
const sweepInterval = time.Hour

type App struct {
	config    *config.Config
	server    *web.Server
	log       *log.Logger
	extractor *gemini.Extractor
	roadmaps  domain.Cache
	courses   domain.Cache
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	scrapeLog := log.New(base.Writer(), base.Prefix()+"[firecrawl] ", base.Flags())
	extractLog := log.New(base.Writer(), base.Prefix()+"[gemini] ", base.Flags())
	searchLog := log.New(base.Writer(), base.Prefix()+"[serper] ", base.Flags())
	videoLog := log.New(base.Writer(), base.Prefix()+"[video] ", base.Flags())
	cacheLog := log.New(base.Writer(), base.Prefix()+"[cache] ", base.Flags())
	pipelineLog := log.New(base.Writer(), base.Prefix()+"[pipeline] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	// обязательные ключи проверяем до какой-либо сети
	if missing := cfg.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingConfig, strings.Join(missing, ", "))
	}

	base.Println("init Firecrawl")
	scraper, err := firecrawl.New(cfg.FirecrawlAPIKey, scrapeLog)
	if err != nil {
		return nil, fmt.Errorf("failed init firecrawl: %w", err)
	}

	base.Println("init Gemini")
	extractor, err := gemini.New(ctx, cfg.GeminiAPIKey, extractLog)
	if err != nil {
		return nil, fmt.Errorf("failed init gemini: %w", err)
	}

	base.Println("init Serper")
	backend := serper.New(cfg.SerperAPIKey, searchLog)
	docResolver := search.NewDocResolver(backend, searchLog)

	videoResolver, strategy, err := buildVideoResolver(ctx, cfg, backend, videoLog)
	if err != nil {
		return nil, fmt.Errorf("failed init video resolver: %w", err)
	}
	base.Printf("video strategy: %s", strategy)

	roadmaps := cache.New(cfg.RoadmapTTL(), log.New(cacheLog.Writer(), cacheLog.Prefix()+"[roadmap] ", cacheLog.Flags()))
	courses := cache.New(cfg.CourseTTL(), log.New(cacheLog.Writer(), cacheLog.Prefix()+"[course] ", cacheLog.Flags()))

	enricher := roadmap.NewEnricher(docResolver, videoResolver, cfg.MaxDocs, cfg.MaxVideos, pipelineLog)
	service := roadmap.NewService(scraper, extractor, enricher, roadmaps, courses, pipelineLog)

	base.Println("init Server")
	server := web.New(serverLog, cfg, service, cfg)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config:    cfg,
		server:    server,
		log:       base,
		extractor: extractor,
		roadmaps:  roadmaps,
		courses:   courses,
	}, nil
}

// buildVideoResolver фиксирует стратегию на время жизни процесса:
// auto выбирает hybrid при наличии ключа YouTube, иначе index.
func buildVideoResolver(ctx context.Context, cfg *config.Config, backend search.Backend, logger *log.Logger) (video.Resolver, string, error) {
	strategy := cfg.VideoStrategy
	if strategy == config.StrategyAuto {
		if cfg.YouTubeAPIKey != "" {
			strategy = config.StrategyHybrid
		} else {
			strategy = config.StrategyIndex
		}
	}

	switch strategy {
	case config.StrategyHybrid:
		yt, err := hybrid.NewYouTubeClient(ctx, cfg.YouTubeAPIKey, logger)
		if err != nil {
			return nil, "", err
		}
		return hybrid.New(backend, yt, logger), strategy, nil
	case config.StrategyIndex:
		return ytsearch.New(logger), strategy, nil
	case config.StrategyProbe:
		return probe.New(logger), strategy, nil
	default:
		return nil, "", fmt.Errorf("unknown VIDEO_STRATEGY %q", strategy)
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	go a.sweepLoop(ctx)
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.extractor.Close()
	a.roadmaps.Clear()
	a.courses.Clear()

	return nil
}

func (a *App) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.roadmaps.Sweep()
			a.courses.Sweep()
		}
	}
}
