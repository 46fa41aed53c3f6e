package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestOverrides(t *testing.T) {
	t.Setenv("BLOG_TEST_STR", "mongo")
	t.Setenv("BLOG_TEST_INT", "9090")
	t.Setenv("BLOG_TEST_DUR", "90s")

	s := "inmemory"
	OverrideString(&s, "BLOG_TEST_STR")
	assert.Equal(t, "mongo", s)

	unset := "kept"
	OverrideString(&unset, "BLOG_TEST_UNSET")
	assert.Equal(t, "kept", unset)

	n := 5000
	require.NoError(t, OverrideInt(&n, "BLOG_TEST_INT"))
	assert.Equal(t, 9090, n)

	d := time.Hour
	require.NoError(t, OverrideDuration(&d, "BLOG_TEST_DUR"))
	assert.Equal(t, 90*time.Second, d)
}

func TestOverrideRejectsGarbage(t *testing.T) {
	t.Setenv("BLOG_TEST_INT", "eighty")
	n := 1
	assert.Error(t, OverrideInt(&n, "BLOG_TEST_INT"))
	assert.Equal(t, 1, n)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
