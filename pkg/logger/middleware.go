// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	forwardedHostHeaderKey = "x-forwarded-host"
	forwardedForHeaderKey  = "x-forwarded-for"
	requestIDHeaderName    = "x-request-id"

	requestIDField = "requestId"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

type fiberLoggingContext struct {
	c          *fiber.Ctx
	handlerErr error
}

type loggingContext interface {
	Request() requestLoggingContext
	Response() responseLoggingContext
}

type requestLoggingContext interface {
	GetHeader(string) string
	URI() string
	Host() string
	Method() string
}

type responseLoggingContext interface {
	BodySize() int
	StatusCode() int
}

// http is the request and response summary written in the record metadata.
type http struct {
	Request  *request  `json:"request,omitempty"`
	Response *response `json:"response,omitempty"`
}

type userAgent struct {
	Original string `json:"original,omitempty"`
}

type request struct {
	Method    string    `json:"method,omitempty"`
	UserAgent userAgent `json:"userAgent"`
}

type responseBody struct {
	Bytes int `json:"bytes,omitempty"`
}

type response struct {
	StatusCode int          `json:"statusCode,omitempty"`
	Body       responseBody `json:"body"`
}

type host struct {
	Hostname      string `json:"hostname,omitempty"`
	ForwardedHost string `json:"forwardedHost,omitempty"`
	IP            string `json:"ip,omitempty"`
}

type url struct {
	Path string `json:"path,omitempty"`
}

func removePort(host string) string {
	return strings.Split(host, ":")[0]
}

// GetReqID returns the request id header, or a new random uuid when it is missing.
func GetReqID(ctx loggingContext) string {
	if requestID := ctx.Request().GetHeader(requestIDHeaderName); requestID != "" {
		return requestID
	}

	requestID, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Errorf("error generating request id: %w", err))
	}
	return requestID.String()
}

func requestFields(ctx loggingContext) []any {
	return []any{
		"url", url{Path: ctx.Request().URI()},
		"host", host{
			ForwardedHost: ctx.Request().GetHeader(forwardedHostHeaderKey),
			Hostname:      removePort(ctx.Request().Host()),
			IP:            ctx.Request().GetHeader(forwardedForHeaderKey),
		},
	}
}

func logIncomingRequest(ctx loggingContext, logger *Logger) {
	args := append([]any{
		"http", http{
			Request: &request{
				Method: ctx.Request().Method(),
				UserAgent: userAgent{
					Original: ctx.Request().GetHeader("user-agent"),
				},
			},
		},
	}, requestFields(ctx)...)

	logger.Boring(IncomingRequestMessage, args...)
}

func logRequestCompleted(ctx loggingContext, logger *Logger, startTime time.Time) {
	args := append([]any{
		"http", http{
			Request: &request{
				Method: ctx.Request().Method(),
				UserAgent: userAgent{
					Original: ctx.Request().GetHeader("user-agent"),
				},
			},
			Response: &response{
				StatusCode: ctx.Response().StatusCode(),
				Body: responseBody{
					Bytes: ctx.Response().BodySize(),
				},
			},
		},
		"responseTime", float64(time.Since(startTime).Milliseconds()),
	}, requestFields(ctx)...)

	logger.Info(RequestCompletedMessage, args...)
}

func (flc *fiberLoggingContext) Request() requestLoggingContext {
	return flc
}

func (flc *fiberLoggingContext) Response() responseLoggingContext {
	return flc
}

func (flc *fiberLoggingContext) GetHeader(key string) string {
	return flc.c.Get(key, "")
}

func (flc *fiberLoggingContext) URI() string {
	return string(flc.c.Request().URI().RequestURI())
}

func (flc *fiberLoggingContext) Host() string {
	return string(flc.c.Request().Host())
}

func (flc *fiberLoggingContext) Method() string {
	return flc.c.Method()
}

func (flc *fiberLoggingContext) getFiberError() *fiber.Error {
	if fiberErr, ok := flc.handlerErr.(*fiber.Error); ok {
		return fiberErr
	}
	return nil
}

func (flc *fiberLoggingContext) BodySize() int {
	if fiberErr := flc.getFiberError(); fiberErr != nil {
		return len(fiberErr.Error())
	}

	if content := flc.c.GetRespHeader("Content-Length"); content != "" {
		if length, err := strconv.Atoi(content); err == nil {
			return length
		}
	}
	return len(flc.c.Response().Body())
}

func (flc *fiberLoggingContext) StatusCode() int {
	if fiberErr := flc.getFiberError(); fiberErr != nil {
		return fiberErr.Code
	}

	return flc.c.Response().StatusCode()
}

// RequestMiddlewareLogger is a fiber middleware that logs every request.
// Each request gets a child of logger carrying the request id, stored in the
// request user context so that handlers can retrieve it with FromContext.
// Requests whose path starts with one of excludedPrefix are not logged.
func RequestMiddlewareLogger(logger *Logger, excludedPrefix []string) fiber.Handler {
	return func(fiberCtx *fiber.Ctx) error {
		loggingCtx := &fiberLoggingContext{c: fiberCtx}

		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(loggingCtx.Request().URI(), prefix) {
				return fiberCtx.Next()
			}
		}

		start := time.Now()

		requestLogger := logger.CreateChild(WithFields(Fields{requestIDField: GetReqID(loggingCtx)}))
		fiberCtx.SetUserContext(WithContext(fiberCtx.UserContext(), requestLogger))

		logIncomingRequest(loggingCtx, requestLogger)
		err := fiberCtx.Next()
		loggingCtx.handlerErr = err

		logRequestCompleted(loggingCtx, requestLogger, start)
		return err
	}
}
