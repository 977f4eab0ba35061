package tagtmpl

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/tagtmpl/internal/version"
	"github.com/arthur-debert/tagtmpl/pkg/config"
	"github.com/arthur-debert/tagtmpl/pkg/logging"
	"github.com/arthur-debert/tagtmpl/pkg/markup"
	"github.com/arthur-debert/tagtmpl/pkg/output"
	"github.com/arthur-debert/tagtmpl/pkg/paths"
	"github.com/arthur-debert/tagtmpl/pkg/store"
	"github.com/arthur-debert/tagtmpl/pkg/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// EnvConfigFile points at an alternative config file
const EnvConfigFile = "TAGTMPL_CONFIG"

// app carries the state shared by every command once the root pre-run
// has loaded it.
type app struct {
	verbosity  int
	format     string
	noColor    bool
	configFile string

	paths  paths.Paths
	config *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "tagtmpl",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "render", Title: "RENDERING:"})
	rootCmd.AddGroup(&cobra.Group{ID: "store", Title: "SAVED TEMPLATES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newTreeCmd(a))
	rootCmd.AddCommand(newSaveCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newSyntaxCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load resolves paths and the layered configuration. Flags the user set
// override every other layer.
func (a *app) load(cmd *cobra.Command) error {
	p, err := paths.New()
	if err != nil {
		return err
	}
	a.paths = p

	configFile := a.configFile
	if configFile == "" {
		configFile = os.Getenv(EnvConfigFile)
	}
	if configFile == "" {
		configFile = p.ConfigFilePath()
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		overrides["output.color"] = false
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: paths.ExpandHome(configFile),
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.config = cfg
	return nil
}

// parser returns a parser that traces tag resolution when asked to
func (a *app) parser() *markup.Parser {
	if a.config.Trace || a.verbosity >= 3 {
		return markup.NewParser(markup.WithTracer(markup.LogTracer(logging.GetLogger("markup"))))
	}
	return markup.NewParser()
}

// sheet loads the bundled style sheet merged with the user's
func (a *app) sheet() (*styles.Sheet, error) {
	sheet := styles.Default()

	file := a.config.Styles.File
	if file == "" {
		file = a.paths.StylesFilePath()
		if _, err := os.Stat(file); err != nil {
			return sheet, nil
		}
	}

	return styles.LoadOverlay(sheet, paths.ExpandHome(file))
}

// renderer builds an output renderer for w. A format passed explicitly
// wins over the configured one.
func (a *app) renderer(w io.Writer, format output.Format) (*output.Renderer, error) {
	if format == output.FormatAuto {
		f, err := output.ParseFormat(a.config.Output.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}
	if format == output.FormatAuto {
		format = output.FormatText
		if f, ok := w.(*os.File); ok {
			format = output.DetectFormat(f)
		}
	}

	sheet, err := a.sheet()
	if err != nil {
		return nil, err
	}

	return output.NewRenderer(w, output.Options{
		Format:      format,
		Sheet:       sheet,
		UnknownTags: a.config.Render.UnknownTags,
		NoColor:     !a.config.Output.Color,
		Parser:      a.parser(),
	})
}

func (a *app) templates() (*store.Templates, error) {
	backend, err := store.NewFileBackend(a.config.Store.Dir)
	if err != nil {
		return nil, err
	}
	return store.NewTemplates(backend), nil
}
