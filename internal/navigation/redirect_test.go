package navigation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsRedirect(t *testing.T) {
	err := To("/dashboard/invoices")

	redirect, ok := AsRedirect(err)
	require.True(t, ok)
	assert.Equal(t, "/dashboard/invoices", redirect.Path)

	wrapped := fmt.Errorf("create: %w", err)
	redirect, ok = AsRedirect(wrapped)
	require.True(t, ok)
	assert.Equal(t, "/dashboard/invoices", redirect.Path)

	_, ok = AsRedirect(errors.New("boom"))
	assert.False(t, ok)

	_, ok = AsRedirect(nil)
	assert.False(t, ok)
}
