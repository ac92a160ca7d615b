package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("TITR_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("enabled when set", func(t *testing.T) {
		t.Setenv("TITR_DEBUG", "1")
		assert.True(t, DebugEnabled())
	})
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	old := Output
	Output = &buf
	defer func() { Output = old }()

	t.Setenv("TITR_DEBUG", "")
	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	t.Setenv("TITR_DEBUG", "1")
	Debugf("shown %d", 2)
	assert.Equal(t, "debug: shown 2\n", buf.String())
}
