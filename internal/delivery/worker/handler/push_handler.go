package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/infra/pubsub"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks a failure that should make Pub/Sub redeliver the message
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes blog events delivered by a Pub/Sub push subscription
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	logger         *slog.Logger
	shareCodes     usecase.ShareCodeUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ShareCodes usecase.ShareCodeUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		logger:         params.Logger,
		shareCodes:     params.ShareCodes,
	}
}

// HandlePush answers 503 for retryable failures so Pub/Sub redelivers, and
// 200 for everything else so poison messages are dropped.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request(), pushAudience(c.Request(), h.pushAudience)); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.BlogEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse blog event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing blog event",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("blog_id", event.BlogID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process blog event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Blog event processed", slog.String("event_id", event.EventID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then
// the X-Request-Id header, and finally generates one.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.BlogEvent) string {
	return deliverycontext.RequestIDOrNew(
		pushMsg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	)
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.BlogEvent) error {
	err := h.shareCodes.HandleBlogEvent(ctx, event)
	if err == nil {
		return nil
	}

	if errors.Is(err, domainerrors.ErrStorageUnavailable) {
		return newRetryableError(err)
	}

	return err
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
// pushAudience returns the configured audience, or the push URL as the
// client saw it. TLS is usually terminated by a proxy in front of the worker,
// so X-Forwarded-Proto wins over the local connection state.
func pushAudience(req *http.Request, configured string) string {
	if configured != "" {
		return configured
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get(echo.HeaderXForwardedProto); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}

func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
