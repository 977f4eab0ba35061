package tagtmpl

import (
	"os"
	"strings"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCmd(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "argument",
			args:     []string{"--format", "text", "render", "{b}hello{/b} {i}world{/i}"},
			expected: "hello world\n",
		},
		{
			name:     "stdin",
			stdin:    "{b}piped{/b}\n",
			args:     []string{"--format", "text", "render"},
			expected: "piped\n",
		},
		{
			name:     "malformed markup keeps text",
			args:     []string{"--format", "text", "render", "{b}hello{/x} world{/b}{/i}"},
			expected: "hello world\n",
		},
		{
			name:     "html",
			args:     []string{"--format", "html", "render", "{b}a < b{/b}"},
			expected: "<span class=\"tag-b\">a &lt; b</span>\n",
		},
		{
			name:     "auto falls back to text off a terminal",
			args:     []string{"render", "{dangerStyle}boom{/dangerStyle}"},
			expected: "boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderCmdJSON(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "--format", "json", "render", "{b}hi{/b}!")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"tag": "b", "children": ["hi"]}, "!"]`, out)
}

func TestRenderCmdData(t *testing.T) {
	setupEnv(t)
	dataFile := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(dataFile, []byte("name: tagtmpl\ncount: 2\n"), 0644))

	out, err := run(t, "", "--format", "text", "render", "--data", dataFile, "{success}built {{.name}}{/success} x{{.count}}")
	require.NoError(t, err)
	assert.Equal(t, "built tagtmpl x2\n", out)

	_, err = run(t, "", "render", "--data", filepath.Join(t.TempDir(), "missing.yaml"), "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRenderCmdUnknownTag(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "--format", "text", "render", "{mystery}x{/mystery}")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRendererMissing))

	t.Setenv("TAGTMPL_RENDER_UNKNOWN_TAGS", "plain")
	out, err := run(t, "", "--format", "text", "render", "{mystery}x{/mystery}")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestRenderCmdUserStyles(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "styles.yaml"),
		[]byte("styles:\n  alert: {foreground: danger, bold: true}\n"), 0644))

	out, err := run(t, "", "--format", "text", "render", "{alert}careful{/alert}")
	require.NoError(t, err)
	assert.Equal(t, "careful\n", out)
}

func TestRenderCmdTrace(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "-vvv", "--format", "text", "render", "{b}x{/i}{/b}")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestStripCmd(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "strip", "{b}bold{/b} {x}text{/i}")
	require.NoError(t, err)
	assert.Equal(t, "bold text\n", out)
}

func TestTokensCmd(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "--format", "text", "tokens", "{b}x{/i}{/b}")
	require.NoError(t, err)
	assert.Contains(t, out, "tokenized:")
	assert.Contains(t, out, "Close(i)")
	assert.Contains(t, out, "resolved:")

	// {/i} matches nothing and takes the pending {b} with it
	assert.True(t, strings.HasSuffix(out, "resolved:\n    0  Text(\"x\")\n"), out)
}

func TestTokensCmdJSON(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "--format", "json", "tokens", "a{/b}")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"tokenized": [{"type": "text", "value": "a"}, {"type": "close", "value": "b"}],
		"resolved": [{"type": "text", "value": "a"}]
	}`, out)
}

func TestTreeCmd(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "tree", "{b}hi{/b}")
	require.NoError(t, err)
	assert.Contains(t, out, "{b}")
	assert.Contains(t, out, `"hi"`)
}

func TestSavedTemplates(t *testing.T) {
	env := setupEnv(t)

	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, MsgNoTemplates+"\n", out)

	out, err = run(t, "", "save", "greet", "{b}hello{/b} {{.name}}")
	require.NoError(t, err)
	assert.Contains(t, out, "greet")

	_, err = os.Stat(filepath.Join(env.dataDir, "store", "templates.yaml"))
	require.NoError(t, err)

	out, err = run(t, "", "show", "greet")
	require.NoError(t, err)
	assert.Equal(t, "{b}hello{/b} {{.name}}\n", out)

	dataFile := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(dataFile, []byte("name: you\n"), 0644))
	out, err = run(t, "", "--format", "text", "render", "--saved", "greet", "--data", dataFile)
	require.NoError(t, err)
	assert.Equal(t, "hello you\n", out)

	_, err = run(t, "", "render", "--saved", "greet", "extra")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	out, err = run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "greet\n", out)

	_, err = run(t, "", "delete", "greet")
	require.NoError(t, err)

	_, err = run(t, "", "show", "greet")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestSaveInvalidName(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "", "save", "bad name", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
