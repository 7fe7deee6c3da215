package greeting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Simple", "World", "Hello, World!"},
		{"Spaces", "Mona Lisa", "Hello, Mona Lisa!"},
		{"Empty", "", "Hello, !"},
		{"Unicode", "Zoë", "Hello, Zoë!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.in))
		})
	}
}

func TestWorkshopMessage(t *testing.T) {
	assert.NotEmpty(t, WorkshopMessage)
	assert.Equal(t, strings.TrimSpace(WorkshopMessage), WorkshopMessage, "message must not carry surrounding whitespace")
}
