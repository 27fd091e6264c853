package localhttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAdaptForwardsRequest(t *testing.T) {
	var got events.APIGatewayV2HTTPRequest
	fn := func(_ context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		got = req
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusCreated,
			Headers:    map[string]string{"content-type": "application/json", "x-test": "1"},
			Body:       `{"ok":true}`,
		}, nil
	}
	r := NewRouter(nil, Route{Path: "/api/news", Handler: fn})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/news?debug=1", strings.NewReader(`{"companies":["Acme"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, "1", w.Header().Get("X-Test"))
	assert.Equal(t, http.MethodPost, got.RequestContext.HTTP.Method)
	assert.Equal(t, "/api/news", got.RawPath)
	assert.Equal(t, `{"companies":["Acme"]}`, got.Body)
	assert.Equal(t, false, got.IsBase64Encoded)
	assert.Equal(t, "1", got.QueryStringParameters["debug"])
	assert.Equal(t, "application/json", got.Headers["content-type"])
	assert.NotEqual(t, "", got.RequestContext.RequestID)
}

func TestAdaptNoContent(t *testing.T) {
	fn := func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusNoContent}, nil
	}
	r := NewRouter(nil, Route{Path: "/api/news", Handler: fn})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/news", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "", w.Body.String())
}

func TestAdaptHandlerError(t *testing.T) {
	fn := func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return events.APIGatewayV2HTTPResponse{}, errors.New("boom")
	}
	r := NewRouter(nil, Route{Path: "/api/news", Handler: fn})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/news", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
