package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"companynews/internal/aggregate"
	"companynews/internal/alerts"
	"companynews/internal/news"
	"companynews/internal/secrets"
)

// NewsDeps are the collaborators of a NewsHandler.
type NewsDeps struct {
	Fetcher      aggregate.PageFetcher
	Secrets      secrets.Source
	Alerts       alerts.Notifier
	Log          *zap.Logger
	KeyName      string
	DefaultPages int
	MaxPages     int
}

// NewsHandler serves POST /api/news.
type NewsHandler struct {
	collector *aggregate.Collector
	secrets   secrets.Source
	alerts    alerts.Notifier
	log       *zap.Logger
	keyName   string
	limits    pageLimits
}

func NewNewsHandler(d NewsDeps) *NewsHandler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Alerts == nil {
		d.Alerts = alerts.Nop{}
	}
	if d.KeyName == "" {
		d.KeyName = "NEWS_API_KEY"
	}
	return &NewsHandler{
		collector: aggregate.NewCollector(d.Fetcher, d.Log),
		secrets:   d.Secrets,
		alerts:    d.Alerts,
		log:       d.Log,
		keyName:   d.KeyName,
		limits:    pageLimits{Default: d.DefaultPages, Max: d.MaxPages},
	}
}

func (h *NewsHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(req.RequestContext.HTTP.Method)
	log := h.log.With(zap.String("request_id", requestID(ctx, req)), zap.String("method", method))

	switch method {
	case http.MethodOptions:
		return noContent(), nil
	case http.MethodPost:
	default:
		return errResp(http.StatusMethodNotAllowed, "Only POST allowed"), nil
	}

	apiKey, err := h.secrets.APIKey(ctx)
	if err != nil {
		if errors.Is(err, secrets.ErrMissing) {
			log.Error("api key not configured", zap.String("source", h.secrets.Name()))
			return h.fail(log, &APIError{Kind: KindServerMisconfigured, Message: "Server missing " + h.keyName, Err: err}), nil
		}
		log.Error("api key lookup failed", zap.Error(err))
		return h.fail(log, &APIError{Kind: KindServerMisconfigured, Message: "Server could not load " + h.keyName, Err: err}), nil
	}

	nreq, err := parseNewsRequest(req.Body, req.IsBase64Encoded, h.limits)
	if err != nil {
		return h.fail(log, err), nil
	}

	log = log.With(
		zap.Strings("companies", nreq.Companies),
		zap.String("mode", string(nreq.Mode())),
		zap.Int("pages_per_company", nreq.PagesPerCompany),
	)

	articles, stats, err := h.collector.Run(ctx, apiKey, nreq)
	if err != nil {
		h.alertUpstream(ctx, log, req, nreq, err)
		return h.fail(log, err), nil
	}
	if articles == nil {
		articles = []aggregate.Article{}
	}

	log.Info("news aggregated",
		zap.Int("upstream_requests", stats.Requests),
		zap.Int("collected", stats.Collected),
		zap.Int("returned", stats.Returned),
		zap.Duration("duration", stats.Duration),
	)
	return jsonResp(http.StatusOK, articles), nil
}

func (h *NewsHandler) fail(log *zap.Logger, err error) events.APIGatewayV2HTTPResponse {
	kind, msg := classify(err)
	fields := []zap.Field{zap.String("kind", kind.String()), zap.Int("status", kind.Status()), zap.Error(err)}
	if kind.Status() >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Info("request rejected", fields...)
	}
	return errResp(kind.Status(), msg)
}

// alertUpstream is best effort: a failed publish is logged and the client
// still gets the upstream error.
func (h *NewsHandler) alertUpstream(ctx context.Context, log *zap.Logger, req events.APIGatewayV2HTTPRequest, nreq aggregate.Request, err error) {
	if kind, _ := classify(err); kind != KindUpstream {
		return
	}
	a := alerts.Alert{
		RequestID: requestID(ctx, req),
		Companies: nreq.Companies,
		Mode:      string(nreq.Mode()),
		Detail:    err.Error(),
		At:        time.Now().UTC(),
	}
	var upErr *news.UpstreamError
	if errors.As(err, &upErr) {
		a.StatusCode = upErr.StatusCode
	}
	// The request context may already be past its deadline.
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if aerr := h.alerts.Notify(actx, a); aerr != nil {
		log.Warn("upstream alert not delivered", zap.Error(aerr))
	}
}

func requestID(ctx context.Context, req events.APIGatewayV2HTTPRequest) string {
	if id := req.RequestContext.RequestID; id != "" {
		return id
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}

// String is used by the local server banner.
func (h *NewsHandler) String() string {
	return fmt.Sprintf("news handler (pages default=%d max=%d, key=%s)", h.limits.Default, h.limits.Max, h.secrets.Name())
}
