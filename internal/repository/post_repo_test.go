package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/farhanadi/bloomlog/internal/model"
)

func TestFindPageOrdersByLastUpdated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	alice := createTestUser(t, db, "alice")

	first := createTestPost(t, db, alice, "First")
	createTestPost(t, db, alice, "Second")
	third := createTestPost(t, db, alice, "Third")

	posts, total, err := repo.FindPage(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if posts[0].ID != third.ID {
		t.Errorf("expected newest post first, got %q", posts[0].Title)
	}

	// Editing the oldest post moves it to the top.
	first.Content = "edited"
	if err := repo.Update(context.Background(), first); err != nil {
		t.Fatalf("failed to update post: %v", err)
	}

	posts, _, err = repo.FindPage(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("failed to list posts after update: %v", err)
	}
	if posts[0].ID != first.ID {
		t.Errorf("expected edited post first, got %q", posts[0].Title)
	}
}

func TestFindPagePagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	alice := createTestUser(t, db, "alice")

	for i := 0; i < 15; i++ {
		createTestPost(t, db, alice, fmt.Sprintf("Post %02d", i))
	}

	page1, total, err := repo.FindPage(context.Background(), 0, 13)
	if err != nil {
		t.Fatalf("failed to fetch page 1: %v", err)
	}
	if total != 15 {
		t.Fatalf("expected total 15, got %d", total)
	}
	if len(page1) != 13 {
		t.Fatalf("expected 13 posts on page 1, got %d", len(page1))
	}

	page2, _, err := repo.FindPage(context.Background(), 13, 13)
	if err != nil {
		t.Fatalf("failed to fetch page 2: %v", err)
	}
	if len(page2) != 2 {
		t.Fatalf("expected 2 posts on page 2, got %d", len(page2))
	}

	// No overlap between pages.
	seen := make(map[string]bool)
	for _, p := range page1 {
		seen[p.ID.String()] = true
	}
	for _, p := range page2 {
		if seen[p.ID.String()] {
			t.Fatalf("post %q appeared on both pages", p.Title)
		}
	}
}

func TestFindPageByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	createTestPost(t, db, alice, "Alice 1")
	createTestPost(t, db, alice, "Alice 2")
	createTestPost(t, db, bob, "Bob 1")

	posts, total, err := repo.FindPageByAuthor(context.Background(), alice.ID, 0, 10)
	if err != nil {
		t.Fatalf("failed to list posts by author: %v", err)
	}
	if total != 2 || len(posts) != 2 {
		t.Fatalf("expected 2 posts by alice, got total %d, len %d", total, len(posts))
	}
	for _, p := range posts {
		if p.AuthorID != alice.ID {
			t.Errorf("post %q belongs to the wrong author", p.Title)
		}
	}
}

func TestDeletePostCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	likeRepo := NewLikeRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice, "Doomed")
	kept := createTestPost(t, db, alice, "Kept")

	if err := commentRepo.Create(context.Background(), &model.Comment{PostID: post.ID, UserID: bob.ID, Content: "bye"}); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	if err := likeRepo.Create(context.Background(), &model.Like{PostID: post.ID, UserID: bob.ID}); err != nil {
		t.Fatalf("failed to create like: %v", err)
	}
	if err := commentRepo.Create(context.Background(), &model.Comment{PostID: kept.ID, UserID: bob.ID, Content: "stay"}); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	if err := repo.Delete(context.Background(), post.ID); err != nil {
		t.Fatalf("failed to delete post: %v", err)
	}

	var comments, likes int64
	db.Model(&model.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	db.Model(&model.Like{}).Where("post_id = ?", post.ID).Count(&likes)
	if comments != 0 || likes != 0 {
		t.Fatalf("expected comments and likes removed with post, got %d comments, %d likes", comments, likes)
	}

	// The sibling post and its comment are untouched.
	db.Model(&model.Comment{}).Where("post_id = ?", kept.ID).Count(&comments)
	if comments != 1 {
		t.Fatalf("expected sibling post comment to survive, got %d", comments)
	}
}

func TestFindByIDPreloadsCommentsInOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice, "Hello")

	for i := 0; i < 3; i++ {
		c := &model.Comment{PostID: post.ID, UserID: alice.ID, Content: fmt.Sprintf("comment %d", i)}
		if err := commentRepo.Create(context.Background(), c); err != nil {
			t.Fatalf("failed to create comment: %v", err)
		}
	}

	found, err := repo.FindByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("failed to find post: %v", err)
	}
	if found.Author.Username != "alice" {
		t.Errorf("expected author preloaded, got %q", found.Author.Username)
	}
	if len(found.Comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(found.Comments))
	}
	for i, c := range found.Comments {
		if c.Content != fmt.Sprintf("comment %d", i) {
			t.Errorf("comment %d out of order: %q", i, c.Content)
		}
		if c.User.Username != "alice" {
			t.Errorf("expected comment user preloaded, got %q", c.User.Username)
		}
	}
}
