package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultBlogListLimit = 10
	maxBlogListLimit     = 100
)

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// List returns posts newest first. The limit is clamped to [1, 100].
func (repo *blogRepository) List(ctx context.Context, filter entity.BlogFilter) ([]*entity.Blog, error) {
	query := repo.db.WithContext(ctx).Model(&model.BlogModel{})
	if filter.Published != nil {
		query = query.Where("published = ?", *filter.Published)
	}

	var rows []model.BlogModel
	err := query.
		Order("created_at DESC").
		Order("id").
		Limit(clampBlogLimit(filter.Limit)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(rows))
	for i := range rows {
		blogs = append(blogs, toBlogDomain(&rows[i]))
	}

	return blogs, nil
}

// FindByID retrieves a single post.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// Create persists a new post.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("blog author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// Update overwrites title, body and published state. Author and creation
// time are never touched.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", blog.ID).
		Updates(map[string]any{
			"title":     blog.Title,
			"body":      blog.Body,
			"published": blog.Published,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	updated, err := repo.FindByID(ctx, blog.ID)
	if err != nil {
		return err
	}
	*blog = *updated

	return nil
}

// Delete removes a post.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BlogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

func clampBlogLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultBlogListLimit
	case limit > maxBlogListLimit:
		return maxBlogListLimit
	default:
		return limit
	}
}

func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Published: data.Published,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Published: data.Published,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
