package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	deliverycontext "stockroom/internal/delivery/context"
	httpmiddleware "stockroom/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
)

// testServer wraps an Echo instance wired with the production error handler
// so tests observe the real wire shapes for every failure mode.
type testServer struct {
	echo *echo.Echo
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

// do runs one request through the server and returns the recorder.
func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

// asUser simulates the auth middleware by stamping the email onto the
// request context before the route's handler runs.
func asUser(email string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := deliverycontext.WithUserEmail(c.Request().Context(), email)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
