package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"guestdesk-backend/internal/faqs"
	"guestdesk-backend/internal/llm"
	"guestdesk-backend/internal/llm/openai"
	"guestdesk-backend/internal/messages"
	"guestdesk-backend/internal/shared/config"
	"guestdesk-backend/internal/shared/server"
	"guestdesk-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	LLM             llm.Client
	MessagesRepo    messages.Repo
	FAQsRepo        faqs.Repo
	MessagesService *messages.Service
	MessagesHandler *messages.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)
	llmClient := buildLLM(cfg)

	var msgRepo messages.Repo
	var faqRepo faqs.Repo
	if sqlDB != nil {
		msgRepo = &messages.PGRepo{DB: sqlDB}
		faqRepo = &faqs.PGRepo{DB: sqlDB}
	} else {
		msgRepo = messages.NewMemoryRepo()
		faqRepo = faqs.NewMemoryRepo()
	}

	svc := &messages.Service{
		LLM:            llmClient,
		Repo:           msgRepo,
		FAQs:           faqRepo,
		SubcallTimeout: cfg.LLMSubcallTimeout,
	}
	handler := messages.NewHandler(svc)

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		LLM:             llmClient,
		MessagesRepo:    msgRepo,
		FAQsRepo:        faqRepo,
		MessagesService: svc,
		MessagesHandler: handler,
	}
	app.Router = server.NewRouter(cfg, handler)
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}

// buildLLM returns nil when no credential is configured; the service reports
// that per request as a configuration error.
func buildLLM(cfg config.Config) llm.Client {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		log.Printf("OPENAI_API_KEY not set, analysis requests will fail with a configuration error")
		return nil
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMBaseURL, cfg.LLMTimeout)
	if err != nil {
		log.Printf("llm client init failed: %v", err)
		return nil
	}
	return client
}
