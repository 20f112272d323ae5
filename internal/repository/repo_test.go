package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/farhanadi/bloomlog/internal/model"
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

	repo := NewUserRepository(db)
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

func createTestPost(t *testing.T, db *gorm.DB, author *model.User, title string) *model.Post {
	t.Helper()

	repo := NewPostRepository(db)
	post := &model.Post{
		Title:    title,
		Content:  "content of " + title,
		AuthorID: author.ID,
	}
	if err := repo.Create(context.Background(), post); err != nil {
		t.Fatalf("failed to create post %s: %v", title, err)
	}
	// Keep updated_at timestamps strictly ordered between fixtures.
	time.Sleep(5 * time.Millisecond)
	return post
}
