package middleware

import (
	"context"
	"fmt"
	"go-rewards/shared/common/logger"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

func Observability() fiber.Handler {

	tracer := otel.GetTracerProvider().Tracer("http_request")
	meter := otel.GetMeterProvider().Meter("http_request")

	// ----- OTel Instruments -----
	requestCounter, _ := meter.Int64Counter("http_requests_total")
	requestDuration, _ := meter.Float64Histogram("http_request_duration_ms")
	inflightCounter, _ := meter.Int64UpDownCounter("http_requests_inflight")
	requestSize, _ := meter.Float64Histogram("http_request_size_bytes")
	responseSize, _ := meter.Float64Histogram("http_response_size_bytes")
	errorCounter, _ := meter.Int64Counter("http_requests_error_total")

	// path ที่ไม่ต้อง trace และไม่นับ metric
	skipPaths := map[string]bool{
		"/health": true,
	}
	skipPrefixes := []string{"/docs", "/favicon"}

	return func(c fiber.Ctx) error {
		start := time.Now()
		method := c.Method()
		path := c.Path()

		skip := skipPaths[path]
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(path, prefix) {
				skip = true
				break
			}
		}

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(HeaderRequestID, requestID)

		var (
			ctx  context.Context
			span trace.Span
		)

		if skip {
			ctx = c.Context()
			span = trace.SpanFromContext(ctx)
		} else {
			ctx, span = tracer.Start(c.Context(), "HTTP "+method+" "+path,
				// https://opentelemetry.io/docs/specs/semconv/registry/attributes/
				trace.WithAttributes(
					attribute.String("http.request_id", requestID),
					attribute.String("http.request.method", method),
					attribute.String("url.path", path),
				),
			)
			defer span.End()
		}

		// child logger ผูก request id ไว้ ให้ handler ชั้นในดึงไปใช้ผ่าน logger.FromContext
		reqLogger := logger.With(
			zap.String("request_id", requestID),
			zap.String("http.request.method", method),
			zap.String("url.path", path),
		)
		ctx = logger.NewContext(ctx, reqLogger)
		c.SetContext(ctx)

		if !skip {
			inflightCounter.Add(ctx, 1)
		}

		err := c.Next()

		duration := time.Since(start).Milliseconds()
		status := c.Response().StatusCode()

		if !skip {
			labels := metric.WithAttributes(
				attribute.String("http.request.method", method),
				attribute.String("http.route", c.Route().Path),
				attribute.Int("http.response.status_code", status),
			)

			requestCounter.Add(ctx, 1, labels)
			requestDuration.Record(ctx, float64(duration), labels)
			inflightCounter.Add(ctx, -1)

			if reqSize := c.Request().Header.ContentLength(); reqSize > 0 {
				requestSize.Record(ctx, float64(reqSize), labels)
			}
			if resSize := len(c.Response().Body()); resSize > 0 {
				responseSize.Record(ctx, float64(resSize), labels)
			}
			if status >= 400 {
				errorCounter.Add(ctx, 1, labels)
			}
		}

		// error ที่ไม่ได้ถูกแปลงเป็น response
		if err != nil {
			reqLogger.Error("an error occurred",
				zap.Any("error", err),
				zap.ByteString("stack", debug.Stack()),
			)
		}

		reqLogger.Info(fmt.Sprintf("%d - %s %s", status, method, path),
			zap.Int("http.response.status_code", status),
			zap.Int64("duration_ms", duration),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.String("span_id", span.SpanContext().SpanID().String()),
		)

		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "")
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return err
	}
}
