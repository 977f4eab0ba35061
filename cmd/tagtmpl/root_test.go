package tagtmpl

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	configDir string
	dataDir   string
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	env := testEnv{
		configDir: t.TempDir(),
		dataDir:   t.TempDir(),
	}
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("TAGTMPL_CONFIG_DIR", env.configDir)
	t.Setenv("TAGTMPL_DATA_DIR", env.dataDir)
	t.Setenv("NO_COLOR", "1")
	return env
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRequiresCommand(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tagtmpl version dev")
}

func TestConfigCmd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "--format", "json", "config")
	require.NoError(t, err)
	assert.Regexp(t, `format = ["']json["']`, out)
	assert.Regexp(t, `unknown_tags = ["']error["']`, out)
}

func TestConfigFileAndEnv(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.toml"),
		[]byte("[render]\nunknown_tags = \"plain\"\n[output]\nformat = \"html\"\n"), 0644))

	out, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Regexp(t, `unknown_tags = ["']plain["']`, out)
	assert.Regexp(t, `format = ["']html["']`, out)

	t.Setenv("TAGTMPL_OUTPUT_FORMAT", "tree")
	out, err = run(t, "", "config")
	require.NoError(t, err)
	assert.Regexp(t, `format = ["']tree["']`, out)

	out, err = run(t, "", "--format", "text", "config")
	require.NoError(t, err)
	assert.Regexp(t, `format = ["']text["']`, out)
}

func TestExplicitConfigFlag(t *testing.T) {
	setupEnv(t)
	path := filepath.Join(t.TempDir(), "other.toml")
	require.NoError(t, os.WriteFile(path, []byte("trace = true\n"), 0644))

	out, err := run(t, "", "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "trace = true")
}

func TestInvalidFormat(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "", "--format", "yaml", "render", "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestSyntaxCmd(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "syntax")
	require.NoError(t, err)
	assert.Contains(t, out, "Template syntax")
	assert.Contains(t, out, "never closed")
}

func TestCompletionCmd(t *testing.T) {
	setupEnv(t)

	for _, shell := range Shells {
		t.Run(shell, func(t *testing.T) {
			out, err := run(t, "", "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "tagtmpl")
		})
	}

	_, err := run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestWriteCompletionUnknownShell(t *testing.T) {
	err := WriteCompletion(NewRootCmd(), "tcsh", io.Discard)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExitCodes(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "success", args: []string{"--format", "text", "render", "{b}x{/b}"}, want: 0},
		{name: "invalid config", args: []string{"--format", "yaml", "render", "x"}, want: 3},
		{name: "unknown tag", args: []string{"--format", "text", "render", "{mystery}x{/mystery}"}, want: 4},
		{name: "missing template", args: []string{"show", "nothing-saved"}, want: 2},
		{name: "bad store name", args: []string{"save", "bad name", "x"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			assert.Equal(t, tt.want, errors.ExitCode(err))
		})
	}
}
