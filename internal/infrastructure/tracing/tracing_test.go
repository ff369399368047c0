package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

func TestNewProvider_Disabled(t *testing.T) {
	tp, shutdown, err := NewProvider(context.Background(), &config.TracingConfig{}, Options{}, logger.NewDiscardLogger())
	require.NoError(t, err)
	assert.Nil(t, tp)
	assert.NoError(t, shutdown(context.Background()))

	Install(nil)
}

func TestNewProvider_StdoutExporter(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.TracingConfig{Enabled: true, ServiceName: "ticketdesk-test", SampleRatio: 1}

	tp, shutdown, err := NewProvider(context.Background(), cfg, Options{Environment: "test", Writer: &buf}, logger.NewDiscardLogger())
	require.NoError(t, err)
	require.NotNil(t, tp)

	_, span := tp.Tracer("test").Start(context.Background(), "db_transaction")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "db_transaction")
	assert.Contains(t, buf.String(), "ticketdesk-test")
}
