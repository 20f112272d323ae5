package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/farhanadi/bloomlog/internal/model"
	"gorm.io/gorm"
)

func TestLikeDuplicatePairRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice, "Hello")

	if err := repo.Create(context.Background(), &model.Like{PostID: post.ID, UserID: alice.ID}); err != nil {
		t.Fatalf("failed to create like: %v", err)
	}

	err := repo.Create(context.Background(), &model.Like{PostID: post.ID, UserID: alice.ID})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}

	count, err := repo.CountByPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("failed to count likes: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 like row, got %d", count)
	}
}

func TestLikeDeleteRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice, "Hello")

	for _, u := range []*model.User{alice, bob} {
		if err := repo.Create(context.Background(), &model.Like{PostID: post.ID, UserID: u.ID}); err != nil {
			t.Fatalf("failed to create like: %v", err)
		}
	}

	if err := repo.Delete(context.Background(), post.ID, alice.ID); err != nil {
		t.Fatalf("failed to delete like: %v", err)
	}

	exists, err := repo.Exists(context.Background(), post.ID, alice.ID)
	if err != nil {
		t.Fatalf("failed to check like: %v", err)
	}
	if exists {
		t.Error("expected alice's like to be removed")
	}

	count, _ := repo.CountByPost(context.Background(), post.ID)
	if count != 1 {
		t.Fatalf("expected bob's like to remain, got count %d", count)
	}
}

func TestLikeSamePairOnDifferentPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	p1 := createTestPost(t, db, alice, "One")
	p2 := createTestPost(t, db, alice, "Two")

	if err := repo.Create(context.Background(), &model.Like{PostID: p1.ID, UserID: alice.ID}); err != nil {
		t.Fatalf("failed to like first post: %v", err)
	}
	if err := repo.Create(context.Background(), &model.Like{PostID: p2.ID, UserID: alice.ID}); err != nil {
		t.Fatalf("expected same user to like a different post: %v", err)
	}
}
