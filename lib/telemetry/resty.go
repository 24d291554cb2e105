package telemetry

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentResty attaches tracing hooks to a resty client. Spans carry
// the request and response headers and bodies.
func InstrumentResty(client *resty.Client, tracerName string) {
	tracer := otel.Tracer(tracerName)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), req.Method)
		req.SetContext(ctx)
		return nil
	})
	client.OnAfterResponse(onAfterResponse)
	client.OnError(onError)
}

func headerAttributes(out *[]attribute.KeyValue, prefix string, headers http.Header) {
	for header, values := range headers {
		if len(values) == 1 {
			*out = append(*out, attribute.String(
				fmt.Sprintf("%s: %s", prefix, header),
				values[0],
			))
			continue
		}
		for i, v := range values {
			*out = append(*out, attribute.String(
				fmt.Sprintf("%s: %s (%d)", prefix, header, i),
				v,
			))
		}
	}
}

func requestBodyAttribute(span trace.Span, req *http.Request) {
	if req == nil || req.GetBody == nil {
		return
	}
	reader, err := req.GetBody()
	if err != nil {
		span.SetAttributes(attribute.String(
			"request/body",
			fmt.Sprintf("failed to get request body: %s", err.Error()),
		))
		return
	}
	// resty installs a GetBody that returns a nil reader on bodyless
	// requests
	if reader == nil {
		return
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		span.SetAttributes(attribute.String(
			"request/body",
			fmt.Sprintf("failed to read request body: %s", err.Error()),
		))
		return
	}
	span.SetAttributes(attribute.String("request/body", string(body)))
}

func onAfterResponse(_ *resty.Client, res *resty.Response) error {
	span := trace.SpanFromContext(res.Request.Context())
	defer span.End()

	// request attributes are set here since res.Request.RawRequest is nil
	// in the before request hook
	span.SetName(fmt.Sprintf("http %s", res.Request.Method))
	span.SetAttributes(httpconv.ClientRequest(res.Request.RawRequest)...)
	span.SetAttributes(httpconv.ClientResponse(res.RawResponse)...)

	var attrs []attribute.KeyValue
	headerAttributes(&attrs, "request/header", res.Request.Header)
	headerAttributes(&attrs, "response/header", res.Header())
	span.SetAttributes(attrs...)

	requestBodyAttribute(span, res.Request.RawRequest)
	span.SetAttributes(attribute.String("response/body", res.String()))

	return nil
}

func onError(req *resty.Request, err error) {
	span := trace.SpanFromContext(req.Context())
	defer span.End()

	span.SetName(fmt.Sprintf("http %s", req.Method))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var attrs []attribute.KeyValue
	headerAttributes(&attrs, "request/header", req.Header)
	span.SetAttributes(attrs...)

	if req.RawRequest == nil {
		return
	}
	span.SetAttributes(httpconv.ClientRequest(req.RawRequest)...)
	requestBodyAttribute(span, req.RawRequest)
}
