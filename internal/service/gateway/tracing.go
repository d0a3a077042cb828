package gateway

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracingCaller 为广告 API 调用添加链路追踪
type tracingCaller struct {
	caller Caller
	tracer trace.Tracer
}

func NewTracingCaller(c Caller) Caller {
	return &tracingCaller{
		caller: c,
		tracer: otel.Tracer("searchad-automation/gateway"),
	}
}

func (c *tracingCaller) Call(ctx context.Context, req Request) Result {
	ctx, span := c.tracer.Start(ctx, "Gateway.Call",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("searchad.path", PathTemplate(req.Path)),
		))
	defer span.End()

	res := c.caller.Call(ctx, req)
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
		span.SetAttributes(
			attribute.String("searchad.error.kind", res.Err.Kind.String()),
			attribute.Int("searchad.error.code", res.Err.Code),
		)
	} else {
		span.SetAttributes(attribute.Int("http.status_code", res.StatusCode))
	}
	return res
}
