package bootstrap

import (
	"log"
	"time"

	"codekickstart-be/internal/config"
	"codekickstart-be/internal/controller"
	"codekickstart-be/internal/pkg/logger"
	"codekickstart-be/internal/pkg/mailer"
	"codekickstart-be/internal/repository/unitofwork"
	"codekickstart-be/internal/service"
	"codekickstart-be/pkg/llm/factory"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	LanguageController controller.ILanguageController
	BookmarkController controller.IBookmarkController
	ChatController     controller.IChatController
	AuthController     controller.IAuthController
	UserController     controller.IUserController

	// Exposed for cmd tooling
	LanguageService service.ILanguageService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// Catalog rows only change on reseed, keep them until then.
	catalogCache := gocache.New(gocache.NoExpiration, 10*time.Minute)

	baseURL := cfg.Ai.OpenAIBaseURL
	if cfg.Ai.LLMProvider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		baseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Services
	languageService := service.NewLanguageService(uowFactory, catalogCache)
	bookmarkService := service.NewBookmarkService(uowFactory)
	chatService := service.NewChatService(uowFactory, llmProvider, sysLogger)
	authService := service.NewAuthService(uowFactory, emailService, sysLogger)
	userService := service.NewUserService(uowFactory)

	return &Container{
		LanguageController: controller.NewLanguageController(languageService),
		BookmarkController: controller.NewBookmarkController(bookmarkService),
		ChatController:     controller.NewChatController(chatService),
		AuthController:     controller.NewAuthController(authService),
		UserController:     controller.NewUserController(userService),

		LanguageService: languageService,
	}
}
