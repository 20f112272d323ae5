package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/farhanadi/bloomlog/internal/dto"
	"github.com/farhanadi/bloomlog/internal/model"
	"github.com/farhanadi/bloomlog/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.GalleryImage{},
	); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	repo := repository.NewUserRepository(db)
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
	}
	if err := repo.Create(context.Background(), user, nil); err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func newTestPostService(db *gorm.DB, pageSize int) PostService {
	return NewPostService(
		repository.NewPostRepository(db),
		repository.NewUserRepository(db),
		repository.NewCommentRepository(db),
		repository.NewLikeRepository(db),
		pageSize,
	)
}

func createTestPostVia(t *testing.T, svc PostService, author *model.User, title string) *dto.PostResponse {
	t.Helper()

	post, err := svc.CreatePost(context.Background(), author.ID, dto.CreatePostRequest{
		Title:   title,
		Content: "content of " + title,
	})
	if err != nil {
		t.Fatalf("failed to create post %s: %v", title, err)
	}
	return post
}
