package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"portfolia/internal/adapter/api"
	"portfolia/internal/adapter/api/handler"
	apimiddleware "portfolia/internal/adapter/api/middleware"
	"portfolia/internal/adapter/api/router"
	"portfolia/internal/adapter/repository"
	"portfolia/internal/domain/service"
	"portfolia/internal/infrastructure/ai"
	"portfolia/internal/infrastructure/email"
	"portfolia/internal/infrastructure/firebase"
	"portfolia/internal/infrastructure/querycache"
	"portfolia/internal/infrastructure/realtime"
	"portfolia/internal/infrastructure/storage"
	"portfolia/internal/infrastructure/websocket"
	"portfolia/internal/usecase"
	"portfolia/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	articleRepo := repository.NewFirestoreArticleRepository(firestoreClient)
	donationRepo := repository.NewFirestoreDonationRepository(firestoreClient)
	contentRepo := repository.NewFirestoreContentRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreSettingsRepository(firestoreClient)
	mediaRepo := repository.NewFirestoreMediaRepository(firestoreClient)

	// Realtime plumbing: the bus carries row-change events, the cache keeps
	// hot reads fresh, and the wiring between them invalidates cached reads
	// whenever a matching change is published.
	bus := realtime.NewBus()
	cache := querycache.New(cfg.QueryCacheTTL)
	usecase.WireCacheInvalidation(bus, cache)

	wsManager := websocket.NewManager()

	roleUC := usecase.NewRoleUseCase(userRepo)
	notificationUC := usecase.NewNotificationUseCase(settingsRepo, roleUC, wsManager)

	var emailSender service.EmailSender
	if cfg.SMTPHost != "" {
		emailSender = email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}
	emailService := service.NewEmailService(emailSender, contactRepo)

	paymentService := service.NewPaystackPaymentService(cfg.PaystackSecretKey)
	assistant := ai.NewGeminiClient(cfg.GeminiModel)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	authUC := usecase.NewAuthUseCase(userRepo, firebaseAuthClient, roleUC)
	chatUC := usecase.NewChatUseCase(chatRepo, userRepo, roleUC, bus, cache, notificationUC, wsManager, assistant, cfg.AIAssistWait)
	articleUC := usecase.NewArticleUseCase(articleRepo, userRepo, roleUC, bus, cache, notificationUC)
	donationUC := usecase.NewDonationUseCase(donationRepo, paymentService, bus, cfg.DefaultCurrency)
	contentUC := usecase.NewContentUseCase(contentRepo, bus, cache)
	contactUC := usecase.NewContactUseCase(contactRepo, emailService, notificationUC, bus, cfg.AdminEmail)

	handler.Setup(authUC, chatUC, articleUC, donationUC, contentUC, contactUC, notificationUC)
	handler.SetupMediaHandler(storageClient, mediaRepo)
	handler.SetupSitemapHandler(articleUC, cfg.SiteURL)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(roleUC)

	wsHandler := handler.NewWebSocketHandler(wsManager, authClient, roleUC, chatUC, notificationUC, bus)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
