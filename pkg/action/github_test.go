package action

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestGitHubHost_Input(t *testing.T) {
	host := NewGitHubHost(WithGetenv(envFrom(map[string]string{
		"INPUT_NAME":         "  World  ",
		"INPUT_WHO_TO_GREET": "Mona",
	})))

	name, err := host.Input("name")
	require.NoError(t, err)
	assert.Equal(t, "World", name)

	who, err := host.Input("who to greet")
	require.NoError(t, err)
	assert.Equal(t, "Mona", who)
}

func TestGitHubHost_RequiredInput(t *testing.T) {
	host := NewGitHubHost(
		WithGetenv(envFrom(map[string]string{"INPUT_NAME": "   "})),
		WithRequired(InputName),
	)

	_, err := host.Input("name")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputRequired)
	assert.Equal(t, "input required and not supplied: name", err.Error())
}

func TestGitHubHost_OptionalInputMayBeEmpty(t *testing.T) {
	host := NewGitHubHost(WithGetenv(envFrom(nil)))

	name, err := host.Input("name")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestGitHubHost_Fail(t *testing.T) {
	var commands bytes.Buffer
	host := NewGitHubHost(WithCommandWriter(&commands))

	host.Fail("boom")

	assert.Contains(t, commands.String(), "::error::boom")
}

func TestGreeter_WithGitHubHost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var commands, out bytes.Buffer
		host := NewGitHubHost(
			WithGetenv(envFrom(map[string]string{"INPUT_NAME": "World"})),
			WithCommandWriter(&commands),
			WithRequired(InputName),
		)
		g := NewGreeter(host, host)
		g.Out = &out

		assert.Equal(t, ExitSuccess, g.Run())
		assert.Equal(t, "Hello, World!\n", out.String())
		assert.Empty(t, commands.String())
	})

	t.Run("MissingRequiredInput", func(t *testing.T) {
		var commands, out bytes.Buffer
		host := NewGitHubHost(
			WithGetenv(envFrom(nil)),
			WithCommandWriter(&commands),
			WithRequired(InputName),
		)
		g := NewGreeter(host, host)
		g.Out = &out

		assert.Equal(t, ExitFailure, g.Run())
		assert.Empty(t, out.String())
		assert.Contains(t, commands.String(), "::error::input required and not supplied: name")
	})
}
