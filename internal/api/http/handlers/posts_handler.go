package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/milsabores/bakery-api/internal/api/dto"
	"github.com/milsabores/bakery-api/internal/service"
	apperrors "github.com/milsabores/bakery-api/pkg/util"
)

// PostsHandler manages blog endpoints.
type PostsHandler struct {
	posts *service.PostService
}

// NewPostsHandler constructs the handler.
func NewPostsHandler(posts *service.PostService) *PostsHandler {
	return &PostsHandler{posts: posts}
}

// List GET /posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	posts, err := h.posts.ListPosts(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, dto.NewPostResponse(&posts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	post, err := h.posts.GetPost(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// Create POST /posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	post, err := h.posts.CreatePost(c.Context(), postInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// Update PUT /posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	post, err := h.posts.UpdatePost(c.Context(), c.Params("id"), postInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// Delete DELETE /posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	if err := h.posts.DeletePost(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func postInput(req dto.PostRequest) service.PostInput {
	return service.PostInput{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Image:    req.Image,
	}
}
