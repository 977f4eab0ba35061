package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tagtmpl/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for tagtmpl
	EnvDataDir = "TAGTMPL_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for tagtmpl
	EnvConfigDir = "TAGTMPL_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for tagtmpl
	EnvStateDir = "TAGTMPL_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "tagtmpl"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// StylesFileName is the name of the optional user style sheet
	StylesFileName = "styles.yaml"

	// StoreDirName is the data subdirectory holding the key-value store
	StoreDirName = "store"

	// LogFileName is the name of the log file
	LogFileName = "tagtmpl.log"
)

// Paths provides centralized path management for tagtmpl
type Paths interface {
	ConfigDir() string
	DataDir() string
	StateDir() string
	ConfigFilePath() string
	StylesFilePath() string
	StoreDir() string
	LogFilePath() string
}

type paths struct {
	config string
	data   string
	state  string
}

// New resolves the tagtmpl directories from the environment
func New() (Paths, error) {
	p := &paths{
		config: resolve(EnvConfigDir, xdg.ConfigHome),
		data:   resolve(EnvDataDir, xdg.DataHome),
		state:  resolve(EnvStateDir, xdg.StateHome),
	}

	for _, dir := range []*string{&p.config, &p.data, &p.state} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// resolve returns the env override when set, else base/tagtmpl
func resolve(env, base string) string {
	if dir := os.Getenv(env); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(base, AppDirName)
}

func (p *paths) ConfigDir() string      { return p.config }
func (p *paths) DataDir() string        { return p.data }
func (p *paths) StateDir() string       { return p.state }
func (p *paths) ConfigFilePath() string { return filepath.Join(p.config, ConfigFileName) }
func (p *paths) StylesFilePath() string { return filepath.Join(p.config, StylesFileName) }
func (p *paths) StoreDir() string       { return filepath.Join(p.data, StoreDirName) }
func (p *paths) LogFilePath() string    { return filepath.Join(p.state, LogFileName) }

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
