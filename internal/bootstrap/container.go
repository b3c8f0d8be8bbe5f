package bootstrap

import (
	"context"
	"fmt"
	"log"

	"vehicle-diagnosis-be/internal/config"
	"vehicle-diagnosis-be/internal/controller"
	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/internal/repository/implementation"
	"vehicle-diagnosis-be/internal/repository/memory"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/internal/service"
	"vehicle-diagnosis-be/pkg/diagnosis/engine"
	"vehicle-diagnosis-be/pkg/diagnosis/question"
	"vehicle-diagnosis-be/pkg/diagnosis/retrieval"
	"vehicle-diagnosis-be/pkg/diagnosis/weighting"
	"vehicle-diagnosis-be/pkg/embedding"
	"vehicle-diagnosis-be/pkg/events"
	"vehicle-diagnosis-be/pkg/llm/factory"
	"vehicle-diagnosis-be/pkg/lock"
	"vehicle-diagnosis-be/pkg/media"

	pktNats "vehicle-diagnosis-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DiagnosisController controller.IDiagnosisController
	EstimateController  controller.IEstimateController
	BookingController   controller.IBookingController
	CatalogController   controller.ICatalogController
	AdminController     controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ReindexService service.IReindexService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	oracleLogger := logger.NewIsolatedLogger(cfg.App.OracleLogFilePath)
	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var eventPublisher events.Publisher = events.NopPublisher{}
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v (events disabled)", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. AI Providers
	embeddingProvider, err := embedding.NewProvider(ctx,
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		return nil, fmt.Errorf("init embedding provider: %w", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(ctx, factory.Config{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		BaseURL:  llmBaseURL(cfg),
		APIKey:   cfg.LLMAPIKey(),
		Timeout:  cfg.Ai.OracleTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init llm provider: %w", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	var transcriber media.Transcriber
	if key, baseURL := transcriptionTarget(cfg); key != "" {
		w, err := media.NewWhisperTranscriber(key, baseURL, cfg.Ai.TranscriptionModel)
		if err != nil {
			return nil, fmt.Errorf("init transcriber: %w", err)
		}
		transcriber = w
	} else {
		log.Printf("[WARN] No transcription key configured, voice intake disabled")
	}

	var vision media.Vision
	if cfg.Keys.GoogleGemini != "" {
		v, err := media.NewGeminiVision(ctx, cfg.Keys.GoogleGemini, cfg.Ai.VisionModel)
		if err != nil {
			return nil, fmt.Errorf("init vision: %w", err)
		}
		vision = v
	} else {
		log.Printf("[WARN] No Gemini key configured, image intake disabled")
	}

	// 4. Diagnosis Engine
	var index retrieval.Index
	switch cfg.Diagnosis.Index {
	case "pgvector":
		index = retrieval.NewStoreIndex(embeddingProvider, implementation.NewProblemEmbeddingRepository(db), sysLogger)
	default:
		index = retrieval.NewFlatIndex(embeddingProvider, sysLogger)
	}

	var sessionRepo engine.SessionRepository
	switch cfg.Diagnosis.SessionStore {
	case "postgres":
		sessionRepo = implementation.NewConversationRepository(db)
	default:
		sessionRepo = memory.NewSessionRepository(cfg.Diagnosis.SessionTTL)
	}

	var locker lock.Locker
	switch cfg.Diagnosis.Lock {
	case "redis":
		rdb, err := newRedisClient(ctx, cfg.App.RedisURL)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		locker = lock.NewRedisLocker(rdb, cfg.Diagnosis.LockTTL)
	default:
		locker = lock.NewLocalLocker()
	}

	diagnosisEngine := engine.NewEngine(
		index,
		question.NewGenerator(llmProvider, oracleLogger),
		weighting.NewAdjuster(llmProvider, oracleLogger),
		sessionRepo,
		locker,
		sysLogger,
	)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.ReindexTopic, pubSub)
	reindexService := service.NewReindexService(
		pubSub,
		publisherService,
		cfg.App.ReindexTopic,
		uowFactory,
		index,
		sysLogger,
	)

	diagnosisService := service.NewDiagnosisService(diagnosisEngine, transcriber, vision, eventPublisher, sysLogger)
	estimateService := service.NewEstimateService(uowFactory, diagnosisEngine)
	bookingService := service.NewBookingService(uowFactory, diagnosisEngine, eventPublisher, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, index)

	// 6. Controllers
	c.DiagnosisController = controller.NewDiagnosisController(diagnosisService)
	c.EstimateController = controller.NewEstimateController(estimateService)
	c.BookingController = controller.NewBookingController(bookingService)
	c.CatalogController = controller.NewCatalogController(catalogService)
	c.AdminController = controller.NewAdminController(catalogService, reindexService, cfg.Keys.Admin)
	c.ReindexService = reindexService

	return c, nil
}

// Close releases broker and cache connections in reverse order of creation
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func newRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: url,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return rdb, nil
}

// llmBaseURL points ollama at the shared base URL unless an explicit one is set
func llmBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMBaseURL != "" {
		return cfg.Ai.LLMBaseURL
	}
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return ""
}

// transcriptionTarget uses Groq when configured, otherwise OpenAI's default endpoint
func transcriptionTarget(cfg *config.Config) (apiKey, baseURL string) {
	if cfg.Keys.Groq != "" {
		return cfg.Keys.Groq, cfg.Ai.TranscriptionURL
	}
	return cfg.Keys.OpenAI, ""
}
