package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/config"
	"resume-builder/internal/generation"
	"resume-builder/internal/health"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/llm/openai"
	"resume-builder/internal/records"
	"resume-builder/internal/render"
	"resume-builder/internal/server"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	Store             records.Store
	Renderer          *render.Renderer
	GenerationService *generation.Service
	GenerationHandler *generation.Handler
	RecordsHandler    *records.Handler
	Health            *health.Service
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	generator, err := buildGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	renderer := render.NewRenderer(render.NewChromeEngine(cfg.ChromePath))

	genSvc := &generation.Service{LLM: generator, Records: store}

	app := &App{
		Config:            cfg,
		Store:             store,
		Renderer:          renderer,
		GenerationService: genSvc,
		GenerationHandler: generation.NewHandler(genSvc),
		RecordsHandler:    records.NewHandler(store, renderer, cfg.SaveDir),
		Health:            health.NewService(),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		Health:            app.Health,
		GenerationHandler: app.GenerationHandler,
		RecordsHandler:    app.RecordsHandler,
	})

	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (records.Store, error) {
	switch cfg.RecordStore {
	case "s3":
		return records.NewS3Store(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	case "memory":
		return records.NewMemoryStore(), nil
	default:
		return records.NewFSStore(cfg.SaveDir)
	}
}

func buildGenerator(ctx context.Context, cfg config.Config) (llm.Generator, error) {
	var (
		generator llm.Generator
		err       error
	)
	switch cfg.LLMProvider {
	case "openai":
		generator, err = openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	case "placeholder":
		return llm.PlaceholderGenerator{}, nil
	default:
		generator, err = gemini.NewClient(ctx, cfg.GoogleAPIKey, cfg.LLMModel)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: %s client unavailable; using placeholder generator: %v", cfg.LLMProvider, err)
			return llm.PlaceholderGenerator{}, nil
		}
		return nil, fmt.Errorf("build %s client: %w", cfg.LLMProvider, err)
	}
	return generator, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
