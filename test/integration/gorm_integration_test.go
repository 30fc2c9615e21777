package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/repository/specification"
	"codekickstart-be/internal/repository/unitofwork"
	"codekickstart-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.LanguageRepository())
	assert.NotNil(t, uow.BookmarkRepository())
	assert.NotNil(t, uow.ChatMessageRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Language Repository", func(t *testing.T) {
		count, err := uow.LanguageRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Language count: %d", count)
	})

	t.Run("Toggle Twice Leaves No Rows", func(t *testing.T) {
		ctx := context.Background()
		userId := uuid.New()

		user := &entity.User{
			Id:            userId,
			Email:         "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash:  "x",
			FullName:      "Integration Test",
			Status:        entity.UserStatusActive,
			EmailVerified: true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		assert.NoError(t, uow.UserRepository().Create(ctx, user))

		bookmark := &entity.Bookmark{
			Id:           uuid.New(),
			UserId:       userId,
			LanguageSlug: "integration-test-slug",
			CreatedAt:    time.Now(),
		}
		assert.NoError(t, uow.BookmarkRepository().Create(ctx, bookmark))

		found, err := uow.BookmarkRepository().FindOne(ctx,
			specification.ByUserId{UserId: userId},
			specification.ByLanguageSlug{Slug: "integration-test-slug"},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)

		assert.NoError(t, uow.BookmarkRepository().Delete(ctx, found.Id))

		count, err := uow.BookmarkRepository().Count(ctx, specification.ByUserId{UserId: userId})
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}
