package tracing

import (
	"fmt"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

// GlobalTracer delegates to whatever provider is installed later, so it is
// safe to create at init time.
var GlobalTracer = otel.Tracer("gymweights-backend")

// HoneycombSetup configures the global OTel pipeline to export to Honeycomb.
// Endpoint, API key and service name come from the usual OTEL_* / HONEYCOMB_*
// env vars. The returned func flushes and shuts the exporter down.
func HoneycombSetup() (func(), error) {
	bsp := honeycomb.NewBaggageSpanProcessor()

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	log.Debugln("honeycomb tracing configured")

	return otelShutdown, nil
}
