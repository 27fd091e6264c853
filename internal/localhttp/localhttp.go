// Package localhttp serves Lambda HTTP API handlers from a gin router so the
// functions can be exercised without deploying.
package localhttp

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LambdaFunc is the signature of an API Gateway v2 Lambda handler.
type LambdaFunc func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// Route mounts a Lambda handler on a path.
type Route struct {
	Path    string
	Handler LambdaFunc
}

// NewRouter returns a gin engine with every route bound to all methods.
func NewRouter(log *zap.Logger, routes ...Route) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	for _, rt := range routes {
		r.Any(rt.Path, Adapt(rt.Handler))
	}
	return r
}

// Adapt converts a gin request into an API Gateway v2 event, invokes fn and
// writes its response back.
func Adapt(fn LambdaFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := toEvent(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}

		res, err := fn(c.Request.Context(), req)
		if err != nil {
			// Lambda turns a handler error into a 502 from API Gateway.
			c.JSON(http.StatusBadGateway, gin.H{"message": "Internal Server Error"})
			return
		}
		writeResponse(c, res)
	}
}

func toEvent(c *gin.Context) (events.APIGatewayV2HTTPRequest, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return events.APIGatewayV2HTTPRequest{}, err
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k, v := range c.Request.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ",")
	}
	query := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		query[k] = strings.Join(v, ",")
	}

	var req events.APIGatewayV2HTTPRequest
	req.Version = "2.0"
	req.RouteKey = "$default"
	req.RawPath = c.Request.URL.Path
	req.RawQueryString = c.Request.URL.RawQuery
	req.Headers = headers
	req.QueryStringParameters = query
	req.RequestContext.RequestID = uuid.NewString()
	req.RequestContext.HTTP.Method = c.Request.Method
	req.RequestContext.HTTP.Path = c.Request.URL.Path
	req.RequestContext.HTTP.SourceIP = c.ClientIP()
	req.RequestContext.HTTP.UserAgent = c.Request.UserAgent()
	req.RequestContext.TimeEpoch = time.Now().UnixMilli()

	if utf8.Valid(raw) {
		req.Body = string(raw)
	} else {
		req.Body = base64.StdEncoding.EncodeToString(raw)
		req.IsBase64Encoded = true
	}
	return req, nil
}

func writeResponse(c *gin.Context, res events.APIGatewayV2HTTPResponse) {
	for k, v := range res.Headers {
		c.Header(k, v)
	}
	for k, vs := range res.MultiValueHeaders {
		for _, v := range vs {
			c.Writer.Header().Add(k, v)
		}
	}

	body := []byte(res.Body)
	if res.IsBase64Encoded {
		if b, err := base64.StdEncoding.DecodeString(res.Body); err == nil {
			body = b
		}
	}

	status := res.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	c.Status(status)
	if len(body) > 0 {
		c.Writer.Write(body)
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
