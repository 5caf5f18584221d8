package cache

import (
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMiss(t *testing.T) {
	assert.True(t, IsMiss(fmt.Errorf("failed to get cache value: %w", redis.Nil)))
	assert.False(t, IsMiss(assert.AnError))
}

func TestEncodeDecode(t *testing.T) {
	raw, err := encode("dock:12")
	require.NoError(t, err)
	assert.Equal(t, "dock:12", string(raw))

	raw, err = encode(map[string]int{"dock": 12})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dock":12}`, string(raw))

	var plain string
	require.NoError(t, decode("kiosk", &plain))
	assert.Equal(t, "kiosk", plain)

	var total int
	require.NoError(t, decode("42", &total))
	assert.Equal(t, 42, total)

	assert.Error(t, decode("{", &total))
}
