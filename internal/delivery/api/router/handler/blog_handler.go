package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"blog/internal/delivery/api/response"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC usecase.BlogUsecase
	Logger *slog.Logger
}

// BlogHandler serves the /blog routes.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler.
func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
		logger: params.Logger,
	}
}

// BlogRequest is the body of create and update. Published defaults to true.
type BlogRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Body      string `json:"body" validate:"required"`
	Published *bool  `json:"published"`
}

func (r *BlogRequest) published() bool {
	return r.Published == nil || *r.Published
}

// BlogResponse is the public view of a post.
type BlogResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBlogResponse(blog *entity.Blog) *BlogResponse {
	return &BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Body:      blog.Body,
		Published: blog.Published,
		AuthorID:  blog.AuthorID,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

// List returns posts, optionally filtered by ?published= and capped by ?limit=.
func (h *BlogHandler) List(c echo.Context) error {
	var input usecase.ListBlogsInput

	if raw := c.QueryParam("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("published must be true or false")
		}
		input.Published = &published
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
		}
		input.Limit = limit
	}

	blogs, err := h.blogUC.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, newBlogResponse(blog))
	}

	return response.Success(c, http.StatusOK, out)
}

// Create stores a new post authored by the caller.
func (h *BlogHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req BlogRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.blogUC.Create(c.Request().Context(), principal, usecase.CreateBlogInput{
		Title:     req.Title,
		Body:      req.Body,
		Published: req.published(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newBlogResponse(blog))
}

// Show returns a single post.
func (h *BlogHandler) Show(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	blog, err := h.blogUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBlogResponse(blog))
}

// Update replaces a post and answers 202 Accepted.
func (h *BlogHandler) Update(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req BlogRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.blogUC.Update(c.Request().Context(), principal, usecase.UpdateBlogInput{
		ID:        id,
		Title:     req.Title,
		Body:      req.Body,
		Published: req.published(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, newBlogResponse(blog))
}

// Delete removes a post and answers 204 No Content.
func (h *BlogHandler) Delete(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.blogUC.Delete(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareQR returns a PNG share code for the post.
func (h *BlogHandler) ShareQR(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.blogUC.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
