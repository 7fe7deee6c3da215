package workshop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	v := VersionString()

	assert.NotEmpty(t, v)
	assert.Equal(t, strings.TrimSpace(v), v)
	assert.Regexp(t, `^\d+\.\d+\.\d+`, v)
}
