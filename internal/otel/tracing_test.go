package otel

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
)

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")
	var buf bytes.Buffer

	shutdown, err := Init(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"tracing_enabled":false`)
}

func TestInit_UnsupportedProtocolDegrades(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
	var buf bytes.Buffer

	shutdown, err := Init(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, err)
	assert.NotNil(t, shutdown)
	assert.Contains(t, buf.String(), "tracing_init_failed")
}

func TestSampler(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "always_on", want: trace.AlwaysSample().Description()},
		{name: "always_off", want: trace.NeverSample().Description()},
		{name: "traceidratio", arg: "0.5", want: trace.TraceIDRatioBased(0.5).Description()},
		{name: "traceidratio", arg: "junk", want: trace.TraceIDRatioBased(1).Description()},
		{name: "parentbased_traceidratio", arg: "0.25", want: trace.ParentBased(trace.TraceIDRatioBased(0.25)).Description()},
		{name: "unknown", want: trace.ParentBased(trace.AlwaysSample()).Description()},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, sampler(tt.name, tt.arg).Description())
		})
	}
}
