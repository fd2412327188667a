package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skill-insight/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "app error", err: NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil), wantStatus: 400, wantMsg: "Bad request"},
		{name: "app error default message", err: NewAppError(fiber.StatusNotFound, "", nil, nil), wantStatus: 404, wantMsg: response.MessageNotFound},
		{name: "app error hides 5xx", err: NewAppError(fiber.StatusBadGateway, "upstream secret", nil, errors.New("x")), wantStatus: 500, wantMsg: response.MessageInternalServerError},
		{name: "fiber error", err: fiber.NewError(fiber.StatusMethodNotAllowed, ""), wantStatus: 405, wantMsg: response.MessageMethodNotAllowed},
		{name: "plain error", err: errors.New("boom"), wantStatus: 500, wantMsg: response.MessageInternalServerError},
		{name: "zero status", err: NewAppError(0, "x", nil, nil), wantStatus: 500, wantMsg: response.MessageInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, _ := normalizeError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewAppError(fiber.StatusBadRequest, "Bad request", nil, cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Bad request: cause", err.Error())
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var out response.SemanticResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, response.MessageInternalServerError, out.Message)
}

func TestErrorMiddleware_NotFoundRoute(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type requestCounter struct {
	routes []string
}

func (r *requestCounter) ObserveRequest(_ string, route string, _ int) {
	r.routes = append(r.routes, route)
}

func TestAccessLog_ObservesRoute(t *testing.T) {
	obs := &requestCounter{}
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil, obs).Middleware())
	app.Get("/items/:id", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/7", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []string{"/items/:id"}, obs.routes)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
}
