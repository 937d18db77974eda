package service

import (
	"context"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/repository"
	"github.com/postdeck/postdeck/internal/transfer"
)

type PostService interface {
	List(ctx context.Context) ([]*models.Post, error)
	PostInfo(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error)
	Update(ctx context.Context, id string, pu *transfer.PostUpdate) (*models.Post, error)
	Remove(ctx context.Context, id string) error
}

type postService struct {
	pr repository.PostRepository
}

func NewPostService(pr repository.PostRepository) PostService {
	return &postService{pr: pr}
}

func (s *postService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.pr.List(ctx)
	if err != nil {
		return nil, WrapError(err, "error listing posts")
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

func (s *postService) PostInfo(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError(err, "error getting post")
	}
	if post == nil {
		return nil, ErrNotFound("Post not found")
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error) {
	content := strings.TrimSpace(pc.Content)
	if content == "" {
		return nil, ErrInvalid("Content is required")
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:        id,
		Content:   content,
		MediaURL:  pc.MediaURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pr.Create(ctx, &post); err != nil {
		return nil, WrapError(err, "error creating post")
	}
	return &post, nil
}

func (s *postService) Update(ctx context.Context, id string, pu *transfer.PostUpdate) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError(err, "error getting post")
	}
	if post == nil {
		return nil, ErrNotFound("Post not found")
	}

	// Absent content keeps the stored value; a provided value is taken as is,
	// even when empty. Media URL only changes when the field was sent, so an
	// explicit null clears it.
	if pu.Content != nil && *pu.Content != "" {
		post.Content = *pu.Content
	}
	if pu.MediaURLSet {
		post.MediaURL = pu.MediaURL
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.pr.Update(ctx, post); err != nil {
		return nil, WrapError(err, "error updating post")
	}
	return post, nil
}

func (s *postService) Remove(ctx context.Context, id string) error {
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return WrapError(err, "error getting post")
	}
	if post == nil {
		return ErrNotFound("Post not found")
	}

	if err := s.pr.Remove(ctx, id); err != nil {
		return WrapError(err, "error removing post")
	}
	return nil
}
