package action

import (
	"fmt"
	"io"

	"github.com/sethvargo/go-githubactions"
)

// GitHubHost reads inputs from and reports failures to a GitHub Actions runner.
// It implements both Inputs and Reporter.
type GitHubHost struct {
	action   *githubactions.Action
	required map[string]bool
}

type hostConfig struct {
	getenv   func(string) string
	writer   io.Writer
	required []string
}

// HostOption configures a GitHubHost.
type HostOption func(*hostConfig)

// WithGetenv replaces os.Getenv as the source of INPUT_* variables.
func WithGetenv(getenv func(string) string) HostOption {
	return func(c *hostConfig) {
		c.getenv = getenv
	}
}

// WithCommandWriter sets where workflow commands (::error:: etc.) are written.
// Defaults to os.Stdout, which is where the runner reads them.
func WithCommandWriter(w io.Writer) HostOption {
	return func(c *hostConfig) {
		c.writer = w
	}
}

// WithRequired marks inputs whose empty value is an error.
func WithRequired(names ...string) HostOption {
	return func(c *hostConfig) {
		c.required = append(c.required, names...)
	}
}

// NewGitHubHost creates a host bound to the current runner environment.
func NewGitHubHost(opts ...HostOption) *GitHubHost {
	var cfg hostConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var ghOpts []githubactions.Option
	if cfg.getenv != nil {
		ghOpts = append(ghOpts, githubactions.WithGetenv(cfg.getenv))
	}
	if cfg.writer != nil {
		ghOpts = append(ghOpts, githubactions.WithWriter(cfg.writer))
	}

	required := make(map[string]bool, len(cfg.required))
	for _, name := range cfg.required {
		required[name] = true
	}

	return &GitHubHost{
		action:   githubactions.New(ghOpts...),
		required: required,
	}
}

// Input returns the trimmed value of INPUT_<NAME>.
func (h *GitHubHost) Input(name string) (string, error) {
	value := h.action.GetInput(name)
	if value == "" && h.required[name] {
		return "", fmt.Errorf("%w: %s", ErrInputRequired, name)
	}
	return value, nil
}

// Fail emits an error annotation. The exit status is left to the caller.
func (h *GitHubHost) Fail(msg string) {
	h.action.Errorf("%s", msg)
}
