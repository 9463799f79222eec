package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	blogRepo  repository.BlogRepository
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	BlogRepo  repository.BlogRepository
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		blogRepo:  params.BlogRepo,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log tags the request logger with the caller when the access gate let one through.
func (srv *blogService) log(ctx context.Context) *slog.Logger {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if principal, ok := deliverycontext.GetPrincipalFromContext(ctx); ok {
		logger = logger.With(slog.String("subject", principal.Subject))
	}

	return logger
}

// List returns posts newest first.
func (srv *blogService) List(ctx context.Context, input usecase.ListBlogsInput) ([]*entity.Blog, error) {
	blogs, err := srv.blogRepo.List(ctx, entity.BlogFilter{
		Published: input.Published,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, nil
}

// Get returns a single post.
func (srv *blogService) Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBlogLookupError(err, id)
	}

	return blog, nil
}

// Create stores a post authored by the caller.
func (srv *blogService) Create(ctx context.Context, principal *entity.Principal, input usecase.CreateBlogInput) (*entity.Blog, error) {
	author, err := resolvePrincipalUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	blog := &entity.Blog{
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
		AuthorID:  author.ID,
	}
	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Info("Blog created", slog.Any("blogID", blog.ID), slog.Any("authorID", author.ID))
	srv.publish(ctx, entity.BlogEventCreated, blog)

	return blog, nil
}

// Update replaces title, body and published state. Only the author may do this.
func (srv *blogService) Update(ctx context.Context, principal *entity.Principal, input usecase.UpdateBlogInput) (*entity.Blog, error) {
	author, err := resolvePrincipalUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	var updated *entity.Blog
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		blogRepo := txRepoFactory.BlogRepo()

		existing, err := blogRepo.FindByID(ctx, input.ID)
		if err != nil {
			return mapBlogLookupError(err, input.ID)
		}
		if !existing.IsOwnedBy(author.ID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the author may update a blog")
		}

		existing.Title = input.Title
		existing.Body = input.Body
		existing.Published = input.Published
		if err := blogRepo.Update(ctx, existing); err != nil {
			return mapBlogLookupError(err, input.ID)
		}
		updated = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Blog updated", slog.Any("blogID", updated.ID))
	srv.publish(ctx, entity.BlogEventUpdated, updated)

	return updated, nil
}

// Delete removes a post. Only the author may do this.
func (srv *blogService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	author, err := resolvePrincipalUser(ctx, srv.userRepo, principal)
	if err != nil {
		return err
	}

	var deleted *entity.Blog
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		blogRepo := txRepoFactory.BlogRepo()

		existing, err := blogRepo.FindByID(ctx, id)
		if err != nil {
			return mapBlogLookupError(err, id)
		}
		if !existing.IsOwnedBy(author.ID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the author may delete a blog")
		}

		if err := blogRepo.Delete(ctx, id); err != nil {
			return mapBlogLookupError(err, id)
		}
		deleted = existing

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Blog deleted", slog.Any("blogID", id))
	srv.publish(ctx, entity.BlogEventDeleted, deleted)

	return nil
}

// ShareQR renders the share code of an existing post.
func (srv *blogService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.blogRepo.FindByID(ctx, id); err != nil {
		return nil, mapBlogLookupError(err, id)
	}

	png, err := srv.qrcode.GenerateBlogQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share code")
	}

	return png, nil
}

// publish emits a change event. The change is already committed, so a
// delivery failure is logged and not returned to the caller.
func (srv *blogService) publish(ctx context.Context, eventType entity.BlogEventType, blog *entity.Blog) {
	event := &service.BlogEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		BlogID:     blog.ID.String(),
		AuthorID:   blog.AuthorID.String(),
		Title:      blog.Title,
		Published:  blog.Published,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishBlogEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish blog event",
			slog.String("event_type", string(eventType)),
			slog.String("blog_id", event.BlogID),
			slog.Any("error", err),
		)
	}
}

func mapBlogLookupError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrBlogNotFound) {
		return domainerrors.ErrBlogNotFound.WithDetails("Blog with the id " + id.String() + " is not available")
	}

	return errors.Wrap(err, "failed to load blog")
}
