package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/repository"
	apperrors "github.com/milsabores/bakery-api/pkg/util"
)

// PostInput describes blog create/update payloads.
type PostInput struct {
	Title    string
	Content  string
	Author   string
	Category string
	Image    string
}

// PostService coordinates blog workflows.
type PostService struct {
	posts repository.PostRepository
}

// NewPostService builds the service.
func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// ListPosts returns all articles, most recent first.
func (s *PostService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return posts, nil
}

// GetPost fetches one article by id.
func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("post", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return post, nil
}

// CreatePost publishes a new article.
func (s *PostService) CreatePost(ctx context.Context, input PostInput) (*domain.Post, error) {
	post := &domain.Post{
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		Category: input.Category,
		Image:    input.Image,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return post, nil
}

// UpdatePost replaces the mutable fields of an article.
func (s *PostService) UpdatePost(ctx context.Context, id string, input PostInput) (*domain.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.Author = input.Author
	post.Category = input.Category
	post.Image = input.Image

	if err := s.posts.Update(ctx, post); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("post", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return post, nil
}

// DeletePost removes an article.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("post", map[string]any{"id": id})
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}
