package main

import (
	"context"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/stocai/blog-admin/internal/domain/contract"
	handlerHttp "github.com/stocai/blog-admin/internal/handler/http"
	"github.com/stocai/blog-admin/internal/infrastructure/cache"
	"github.com/stocai/blog-admin/internal/infrastructure/config"
	"github.com/stocai/blog-admin/internal/infrastructure/logger"
	"github.com/stocai/blog-admin/internal/infrastructure/session"
	"github.com/stocai/blog-admin/internal/infrastructure/upstream"
	"github.com/stocai/blog-admin/internal/infrastructure/uuidgen"
	"github.com/stocai/blog-admin/internal/infrastructure/validator"
	"github.com/stocai/blog-admin/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Session store and upstream HTTP pipeline. The cookie jar is shared
	// between the credential transport and the client so the cookie
	// variant's session rides every request.
	sessionStore := session.NewFileStore(appConfig.GetSessionFile())
	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatalf("Failed to create cookie jar: %v", err)
	}
	httpc := &http.Client{Jar: jar, Timeout: appConfig.GetUpstreamTimeout()}

	var transport contract.ICredentialTransport
	switch appConfig.GetAuthMode() {
	case config.AuthModeCookie:
		transport = upstream.NewCookieTransport(appConfig.GetUpstreamBaseURL(), httpc)
	case config.AuthModeBearer:
		transport = upstream.NewBearerTransport(appConfig.GetUpstreamBaseURL(), httpc)
	default:
		log.Fatalf("Unknown UPSTREAM_AUTH_MODE %q", appConfig.GetAuthMode())
	}

	client := upstream.NewClient(appConfig.GetUpstreamBaseURL(), httpc, sessionStore, transport, appLogger)

	// Auth gate: resolve the stored session once, then let the upstream
	// client signal credential expiry into a forced logout.
	authUsecase := usecase.NewAuthUsecase(sessionStore, transport, appLogger)
	authUsecase.Init()
	client.SetAuthExpiredHandler(authUsecase.HandleAuthExpired)

	// Cache backend: Redis when configured, in-process otherwise.
	var cacheStore contract.ICache = cache.NewMemoryStore()
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := cache.NewRedisFromURL(context.Background(), redisURL)
		defer cache.Close(rdb)
		cacheStore = cache.NewRedisStore(rdb)
	}

	dataService := usecase.NewDataService(client, cacheStore, appLogger, appConfig.GetCacheStaleTime())

	// Dependency Injection: usecases
	blogUsecase := usecase.NewBlogUseCase(dataService)
	commentUsecase := usecase.NewCommentUseCase(dataService)
	feedbackUsecase := usecase.NewFeedbackUseCase(dataService)
	storyUsecase := usecase.NewStoryUseCase(dataService)
	dashboardUsecase := usecase.NewDashboardUseCase(blogUsecase, commentUsecase, feedbackUsecase, storyUsecase)

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(
		authUsecase, blogUsecase, commentUsecase, feedbackUsecase,
		storyUsecase, dashboardUsecase, uuidgen.NewGenerator(),
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Admin gateway running on port %s (upstream %s)", port, appConfig.GetUpstreamBaseURL())
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
