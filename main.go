package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/config"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/data"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/db"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/event"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/handlers"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/repository"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/service"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/store"
	"github.com/cristian-diego/cavaleiros-da-biblia/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI)
	defer db.DisconnectMongo()
	db.InitRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	defer db.CloseRedis()

	var publisher *event.Publisher
	if cfg.RabbitMQ.URI != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	database := db.Client.Database(cfg.MongoDB.Database)

	userRepo := repository.NewUserRepository(database)
	accountRepo := repository.NewAccountRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	resultRepo := repository.NewResultRepository(database)
	kvRepo := repository.NewKVRepository(db.RedisClient, "cavaleiros")
	leaderboardRepo := repository.NewLeaderboardRepository(db.RedisClient)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("Failed to ensure account indexes: %v", err)
	}
	if err := questionRepo.SeedIfEmpty(ctx, data.Questions); err != nil {
		log.Printf("Failed to seed questions: %v", err)
	}
	cancel()

	writer := store.NewWriter(cfg.MongoDB.Timeout)

	profileService := service.NewProfileService(userRepo, kvRepo, leaderboardRepo, writer, publisher)
	missionService := service.NewMissionService(kvRepo, profileService, writer, publisher)
	roundService := service.NewRoundService(questionRepo, resultRepo, profileService, publisher)
	authService := service.NewAuthService(accountRepo, profileService, publisher, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	prefsService := service.NewPrefsService(kvRepo)
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, userRepo, cfg.Leaderboard.Size)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	missionHandler := handlers.NewMissionHandler(missionService)
	roundHandler := handlers.NewRoundHandler(roundService)
	questionHandler := handlers.NewQuestionHandler(questionRepo)
	contentHandler := handlers.NewContentHandler()
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	prefsHandler := handlers.NewPrefsHandler(prefsService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.Server.ServiceName})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	publicAuth := r.Group("/public/auth")
	{
		publicAuth.POST("/register", authHandler.Register)
		publicAuth.POST("/login", authHandler.Login)
	}

	publicContent := r.Group("/public/content")
	{
		publicContent.GET("/verses", contentHandler.ListVerses)
		publicContent.GET("/verses/daily", contentHandler.DailyVerse)
		publicContent.GET("/verses/random", contentHandler.RandomVerse)
		publicContent.GET("/avatars", contentHandler.ListAvatars)
		publicContent.GET("/categories", contentHandler.ListCategories)
		publicContent.GET("/difficulties", contentHandler.ListDifficulties)
		publicContent.GET("/achievements", roundHandler.ListAchievements)
	}

	publicLeaderboard := r.Group("/public/leaderboard")
	{
		publicLeaderboard.GET("/", leaderboardHandler.Top)
	}

	protected := r.Group("/protected", handlers.AuthRequired(authService))

	protectedProfile := protected.Group("/profile")
	{
		protectedProfile.GET("/", profileHandler.GetProfile)
		protectedProfile.PUT("/", profileHandler.UpdateProfile)
		protectedProfile.DELETE("/", profileHandler.ResetProfile)
		protectedProfile.GET("/rank", leaderboardHandler.Rank)
	}

	protectedMissions := protected.Group("/missions")
	{
		protectedMissions.GET("/", missionHandler.GetMissions)
		protectedMissions.POST("/:id/complete", missionHandler.CompleteMission)
		protectedMissions.POST("/reset", missionHandler.ResetMissions)
	}

	protectedRound := protected.Group("/quiz/round")
	{
		protectedRound.POST("/", roundHandler.StartRound)
		protectedRound.GET("/", roundHandler.GetRound)
		protectedRound.POST("/category", roundHandler.SelectCategory)
		protectedRound.POST("/difficulty", roundHandler.SelectDifficulty)
		protectedRound.GET("/question", roundHandler.CurrentQuestion)
		protectedRound.POST("/answer", roundHandler.Answer)
		protectedRound.POST("/achievements", roundHandler.ShowAchievements)
		protectedRound.POST("/back", roundHandler.ReturnToCategorySelect)
		protectedRound.POST("/restart", roundHandler.Restart)
		protectedRound.GET("/results", roundHandler.Results)
	}

	protectedQuestion := protected.Group("/quiz/question")
	{
		protectedQuestion.GET("/", questionHandler.ListQuestions)
		protectedQuestion.GET("/:id", questionHandler.GetQuestion)
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	protectedPrefs := protected.Group("/preferences")
	{
		protectedPrefs.GET("/", prefsHandler.GetPreferences)
		protectedPrefs.PUT("/theme", prefsHandler.SetTheme)
		protectedPrefs.POST("/onboarding", prefsHandler.MarkOnboardingSeen)
	}

	var registry *discovery.ServiceRegistry
	if cfg.Consul.Address != "" {
		var err error
		registry, err = discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Printf("Failed to create Consul client: %v", err)
		} else if err := registry.Register(); err != nil {
			log.Printf("Failed to register with Consul: %v", err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if registry != nil {
		registry.Deregister()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	writer.Close()
	log.Println("Server stopped")
}
