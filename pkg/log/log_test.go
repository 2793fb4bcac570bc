package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	t.Run("development drops noisy fields", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")

		assert.True(t, keepField("correlation_id"))
		assert.True(t, keepField("invoice_id"))
		assert.True(t, keepField("customer_id"))
		assert.True(t, keepField("query"))
		assert.True(t, keepField("page"))
		assert.True(t, keepField("version"))
		assert.True(t, keepField("user_email"))
		assert.False(t, keepField("remote_addr"))
	})

	t.Run("production keeps everything", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		assert.True(t, keepField("remote_addr"))
	})
}
