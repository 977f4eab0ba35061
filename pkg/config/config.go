package config

import (
	"os"
	"slices"
	"strings"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/arthur-debert/tagtmpl/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "TAGTMPL_"

// Unknown tag policies
const (
	UnknownTagsError = "error"
	UnknownTagsPlain = "plain"
)

var validFormats = []string{"auto", "term", "text", "json", "html", "tree"}

// Config is the effective tagtmpl configuration
type Config struct {
	Trace  bool         `koanf:"trace" toml:"trace"`
	Output OutputConfig `koanf:"output" toml:"output"`
	Render RenderConfig `koanf:"render" toml:"render"`
	Styles StylesConfig `koanf:"styles" toml:"styles"`
	Store  StoreConfig  `koanf:"store" toml:"store"`
}

// OutputConfig selects how rendered templates are written
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
	Color  bool   `koanf:"color" toml:"color"`
}

// RenderConfig controls the renderer
type RenderConfig struct {
	UnknownTags string `koanf:"unknown_tags" toml:"unknown_tags"`
}

// StylesConfig points at an optional user style sheet
type StylesConfig struct {
	File string `koanf:"file" toml:"file"`
}

// StoreConfig locates the template store
type StoreConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// LoadOptions tells Load where to look
type LoadOptions struct {
	// ConfigFile is the user config path. A missing file is not an error.
	ConfigFile string
	// Overrides are flattened keys (e.g. "output.format") applied last
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err == nil {
			if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ConfigFile).
					WithDetail("path", opts.ConfigFile)
			}
			logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded user config")
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("format", cfg.Output.Format).
		Str("unknownTags", cfg.Render.UnknownTags).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps TAGTMPL_RENDER_UNKNOWN_TAGS to render.unknown_tags: the
// first underscore after the prefix separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(c.Output.Format)
	if !slices.Contains(validFormats, c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("valid", validFormats)
	}

	switch c.Render.UnknownTags {
	case UnknownTagsError, UnknownTagsPlain:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown tag policy %q", c.Render.UnknownTags).
			WithDetail("valid", []string{UnknownTagsError, UnknownTagsPlain})
	}

	return nil
}

// ToTOML renders the configuration as a TOML document
func ToTOML(cfg *Config) (string, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
