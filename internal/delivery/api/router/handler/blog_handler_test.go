package handler

import (
	"net/http"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	mockUsecase "blog/internal/mocks/usecase"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBlogTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockBlogUsecase) {
	t.Helper()

	blogUC := mockUsecase.NewMockBlogUsecase(t)
	h := NewBlogHandler(BlogHandlerParams{BlogUC: blogUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/blog", asPrincipal(alice))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Show)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/qr", h.ShareQR)

	return e, blogUC
}

func TestBlogHandler_List(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	published := true
	blogUC.EXPECT().List(mock.Anything, usecase.ListBlogsInput{Published: &published, Limit: 5}).
		Return([]*entity.Blog{{ID: uuid.New(), Title: "hello"}}, nil)

	rec := doJSON(t, e, http.MethodGet, "/blog?published=true&limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []BlogResponse
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Title)
}

func TestBlogHandler_List_EmptyIsArray(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	blogUC.EXPECT().List(mock.Anything, usecase.ListBlogsInput{}).Return(nil, nil)

	rec := doJSON(t, e, http.MethodGet, "/blog", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestBlogHandler_List_InvalidQuery(t *testing.T) {
	e, _ := newBlogTestEcho(t)

	for _, target := range []string{"/blog?published=maybe", "/blog?limit=-1", "/blog?limit=ten"} {
		rec := doJSON(t, e, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestBlogHandler_Create_DefaultsToPublished(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	authorID := uuid.New()
	blogUC.EXPECT().Create(mock.Anything, alice, usecase.CreateBlogInput{Title: "hello", Body: "world", Published: true}).
		Return(&entity.Blog{ID: uuid.New(), Title: "hello", Body: "world", Published: true, AuthorID: authorID}, nil)

	rec := doJSON(t, e, http.MethodPost, "/blog", map[string]string{"title": "hello", "body": "world"})

	require.Equal(t, http.StatusCreated, rec.Code)
	var got BlogResponse
	decodeData(t, rec, &got)
	assert.Equal(t, authorID, got.AuthorID)
	assert.True(t, got.Published)
}

func TestBlogHandler_Create_Draft(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	blogUC.EXPECT().Create(mock.Anything, alice, usecase.CreateBlogInput{Title: "draft", Body: "wip", Published: false}).
		Return(&entity.Blog{Title: "draft", Body: "wip"}, nil)

	rec := doJSON(t, e, http.MethodPost, "/blog", map[string]any{"title": "draft", "body": "wip", "published": false})

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestBlogHandler_Create_MissingTitle(t *testing.T) {
	e, _ := newBlogTestEcho(t)

	rec := doJSON(t, e, http.MethodPost, "/blog", map[string]string{"body": "world"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"title": "required"}, decodeError(t, rec).Error.Details)
}

func TestBlogHandler_Show_NotFound(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	id := uuid.New()
	blogUC.EXPECT().Get(mock.Anything, id).
		Return(nil, domainerrors.ErrBlogNotFound.WithDetails("Blog with the id "+id.String()+" is not available"))

	rec := doJSON(t, e, http.MethodGet, "/blog/"+id.String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BLOG_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestBlogHandler_Update_Accepted(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	id := uuid.New()
	blogUC.EXPECT().Update(mock.Anything, alice, usecase.UpdateBlogInput{ID: id, Title: "new", Body: "text", Published: true}).
		Return(&entity.Blog{ID: id, Title: "new", Body: "text", Published: true}, nil)

	rec := doJSON(t, e, http.MethodPut, "/blog/"+id.String(), map[string]string{"title": "new", "body": "text"})

	require.Equal(t, http.StatusAccepted, rec.Code)
	var got BlogResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "new", got.Title)
}

func TestBlogHandler_Update_NotOwner(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	id := uuid.New()
	blogUC.EXPECT().Update(mock.Anything, alice, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrForbidden, "caller does not own the blog"))

	rec := doJSON(t, e, http.MethodPut, "/blog/"+id.String(), map[string]string{"title": "new", "body": "text"})

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestBlogHandler_Delete_NoContent(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	id := uuid.New()
	blogUC.EXPECT().Delete(mock.Anything, alice, id).Return(nil)

	rec := doJSON(t, e, http.MethodDelete, "/blog/"+id.String(), nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBlogHandler_ShareQR(t *testing.T) {
	e, blogUC := newBlogTestEcho(t)

	id := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")
	blogUC.EXPECT().ShareQR(mock.Anything, id).Return(png, nil)

	rec := doJSON(t, e, http.MethodGet, "/blog/"+id.String()+"/qr", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
