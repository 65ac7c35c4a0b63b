// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	netHTTP "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/transport/fake"
)

func TestRequestMiddlewareLogger(t *testing.T) {
	t.Parallel()

	recorder := fake.NewFakeTransport(t)
	log := New(WithTransports(Custom(recorder)), WithLevel(logdata.Boring), WithPrefix("http"))

	app := fiber.New(fiber.Config{})
	require.NotNil(t, app)

	app.Use(RequestMiddlewareLogger(log, []string{"/-/healthz"}))
	app.Get("/foo", func(c *fiber.Ctx) error {
		FromContext(c.UserContext()).Warn("inside handler")
		return c.SendString("bar")
	})
	app.Get("/-/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(netHTTP.StatusOK)
	})

	req := httptest.NewRequest(netHTTP.MethodGet, "http://example.com/foo", nil)
	req.Header.Set("User-Agent", "UnitTestAgent/1.0")
	req.Header.Set(requestIDHeaderName, "req-42")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data := recorder.Data()
	require.Len(t, data, 3)

	assert.Equal(t, logdata.Boring, data[0].Level)
	assert.Equal(t, IncomingRequestMessage, data[0].Message)
	assert.Equal(t, "req-42", data[0].Metadata[requestIDField])
	assert.Equal(t, "http", data[0].Prefix)
	assert.Equal(t, url{Path: "/foo"}, data[0].Metadata["url"])

	assert.Equal(t, "inside handler", data[1].Message)
	assert.Equal(t, "req-42", data[1].Metadata[requestIDField])

	assert.Equal(t, logdata.Info, data[2].Level)
	assert.Equal(t, RequestCompletedMessage, data[2].Message)
	completed, ok := data[2].Metadata["http"].(http)
	require.True(t, ok)
	assert.Equal(t, netHTTP.StatusOK, completed.Response.StatusCode)
	assert.Equal(t, 3, completed.Response.Body.Bytes)
	assert.Equal(t, "UnitTestAgent/1.0", completed.Request.UserAgent.Original)
	assert.Contains(t, data[2].Metadata, "responseTime")

	health := httptest.NewRequest(netHTTP.MethodGet, "http://example.com/-/healthz", nil)
	healthResp, err := app.Test(health)
	require.NoError(t, err)
	defer healthResp.Body.Close()
	assert.Equal(t, 3, recorder.Writes(), "excluded prefixes are not logged")
}

func TestGetReqIDGeneratesUUID(t *testing.T) {
	t.Parallel()

	app := fiber.New(fiber.Config{})
	var generated string
	app.Get("/", func(c *fiber.Ctx) error {
		generated = GetReqID(&fiberLoggingContext{c: c})
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(netHTTP.MethodGet, "http://example.com/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	_, err = uuid.Parse(generated)
	require.NoError(t, err)
}
