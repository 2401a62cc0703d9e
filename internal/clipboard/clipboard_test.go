package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickNative(t *testing.T) {
	c := pick(func() error { return nil }, true)
	assert.Equal(t, "native", c.Name())
}

func TestPickFallback(t *testing.T) {
	failing := func() error { return errors.New("no display") }

	assert.Equal(t, "atotto", pick(failing, true).Name())
	assert.Equal(t, "unavailable", pick(failing, false).Name())
}

func TestUnavailableReadsEmpty(t *testing.T) {
	c := unavailable{}

	text, err := c.Read()
	require.NoError(t, err)
	assert.Empty(t, text)

	assert.ErrorIs(t, c.Write("𝕬"), ErrUnavailable)
}
