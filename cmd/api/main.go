package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/prospectfinder/backend/internal/config"
	"github.com/prospectfinder/backend/internal/infra/cache"
	"github.com/prospectfinder/backend/internal/infra/database"
	"github.com/prospectfinder/backend/internal/infra/http/handlers"
	"github.com/prospectfinder/backend/internal/infra/http/middleware"
	"github.com/prospectfinder/backend/internal/infra/integration/lusha"
	"github.com/prospectfinder/backend/internal/infra/mail"
	"github.com/prospectfinder/backend/internal/infra/queue"
	"github.com/prospectfinder/backend/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}

	db, err := database.NewDBConnection(cfg.Database.URL)
	if err != nil {
		log.Fatalf("❌ database connection failed: %v", err)
	}
	defer db.Close()

	rdb, err := cache.NewRedisClient(context.Background(), cfg.Redis.URL)
	if err != nil {
		log.Fatalf("❌ redis connection failed: %v", err)
	}
	defer rdb.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.User, cfg.RabbitMQ.Pass, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	if err != nil {
		log.Fatalf("❌ rabbitmq connection failed: %v", err)
	}
	defer rabbitMQ.Close()

	// 1. Repositories
	userRepo := database.NewUserRepository(db)
	prospectRepo := database.NewProspectRepository(db)
	companyRepo := database.NewCompanyRepository(db)
	filterRepo := database.NewSavedFilterRepository(db)
	listRepo := database.NewProspectListRepository(db)
	analysisRepo := database.NewAnalysisRepository(db)

	// 2. Gateways and adapters
	lushaClient := lusha.NewClient(lusha.Config{
		APIKey:  cfg.Lusha.APIKey,
		BaseURL: cfg.Lusha.BaseURL,
		Timeout: cfg.Lusha.Timeout,
	})
	searchCache := cache.NewSearchCache(rdb, cache.DefaultSearchTTL)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Pass, cfg.Mail.From)

	// 3. Worker consuming analysis jobs
	worker := queue.NewWorker(rabbitMQ.Ch, analysisRepo, queue.NewStubAnalysisEngine())
	go worker.Start(queue.QueueName)

	// 4. Use cases
	registerUC := usecase.NewRegisterUserUseCase(userRepo, mailSender)
	searchUC := usecase.NewSearchUseCase(lushaClient, prospectRepo, searchCache)
	enrichUC := usecase.NewEnrichUseCase(lushaClient, prospectRepo, companyRepo)
	analysisUC := usecase.NewRequestAnalysisUseCase(analysisRepo, producer)

	// 5. Handlers
	auth := middleware.NewAuth(cfg.Auth.JWTSecret)
	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:           auth,
		AuthHandler:    handlers.NewAuthHandler(registerUC, userRepo, auth, cfg.Auth.TokenTTL),
		ProspectH:      handlers.NewProspectHandler(prospectRepo),
		SearchH:        handlers.NewSearchHandler(searchUC, enrichUC),
		LushaH:         handlers.NewLushaHandler(lushaClient),
		UserH:          handlers.NewUserHandler(filterRepo, listRepo),
		AnalysisH:      handlers.NewAnalysisHandler(analysisUC, analysisRepo),
		HealthH:        handlers.NewHealthHandler(db, rabbitMQ.Conn, rdb, cfg.Lusha.APIKey),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	log.Printf("🔥 ProspectFinder API listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}
