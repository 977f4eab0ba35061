package tagtmpl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/tagtmpl/internal/version"
	"github.com/arthur-debert/tagtmpl/pkg/config"
	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/arthur-debert/tagtmpl/pkg/logging"
	"github.com/arthur-debert/tagtmpl/pkg/markup"
	"github.com/arthur-debert/tagtmpl/pkg/output"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		dataFile string
		saved    string
	)

	cmd := &cobra.Command{
		Use:     "render [template]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "render",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")

			var tmpl string
			if saved != "" {
				if len(args) > 0 {
					return errors.New(errors.ErrInvalidInput, MsgErrTemplateAndSaved)
				}
				templates, err := a.templates()
				if err != nil {
					return err
				}
				if tmpl, err = templates.Lookup(saved); err != nil {
					return err
				}
			} else {
				var err error
				if tmpl, err = readTemplate(cmd, args); err != nil {
					return err
				}
			}

			data, err := loadData(dataFile)
			if err != nil {
				return err
			}

			logger.Info().
				Str("saved", saved).
				Str("dataFile", dataFile).
				Int("length", len(tmpl)).
				Msg("Rendering template")

			r, err := a.renderer(cmd.OutOrStdout(), output.FormatAuto)
			if err != nil {
				return err
			}
			return r.Render(tmpl, data)
		},
	}

	cmd.Flags().StringVarP(&dataFile, "data", "d", "", MsgFlagData)
	cmd.Flags().StringVarP(&saved, "saved", "s", "", MsgFlagSaved)
	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "strip [template]",
		Short:   MsgStripShort,
		GroupID: "render",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := readTemplate(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markup.PlainText(a.parser().Parse(tmpl)))
			return err
		},
	}
}

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tokens [template]",
		Short:   MsgTokensShort,
		Long:    MsgTokensLong,
		GroupID: "render",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := readTemplate(cmd, args)
			if err != nil {
				return err
			}

			tokenized := markup.Tokenize(tmpl)
			resolved := a.parser().Tokens(tmpl)
			w := cmd.OutOrStdout()

			if strings.EqualFold(a.config.Output.Format, output.FormatJSON.String()) {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string][]markup.Token{
					"tokenized": tokenized,
					"resolved":  resolved,
				})
			}

			writeTokens(w, MsgStageTokenized, tokenized)
			writeTokens(w, MsgStageResolved, resolved)
			return nil
		},
	}
}

func writeTokens(w io.Writer, title string, tokens []markup.Token) {
	fmt.Fprintln(w, title)
	for i, tok := range tokens {
		fmt.Fprintf(w, "  %3d  %s\n", i, tok)
	}
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tree [template]",
		Short:   MsgTreeShort,
		GroupID: "render",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := readTemplate(cmd, args)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout(), output.FormatTree)
			if err != nil {
				return err
			}
			return r.Render(tmpl, nil)
		},
	}
}

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "save NAME TEMPLATE",
		Short:   MsgSaveShort,
		Example: MsgSaveExample,
		GroupID: "store",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := a.templates()
			if err != nil {
				return err
			}
			if err := templates.Save(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgSaved, args[0])
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show NAME",
		Short:   MsgShowShort,
		GroupID: "store",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := a.templates()
			if err != nil {
				return err
			}
			body, err := templates.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "store",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := a.templates()
			if err != nil {
				return err
			}
			names, err := templates.Names()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(w, MsgNoTemplates)
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Short:   MsgDeleteShort,
		GroupID: "store",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := a.templates()
			if err != nil {
				return err
			}
			if err := templates.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgDeleted, args[0])
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.ToTOML(a.config)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newSyntaxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "syntax",
		Short:   MsgSyntaxShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			style := "notty"
			if f, ok := w.(*os.File); ok && a.config.Output.Color && isatty.IsTerminal(f.Fd()) {
				style = "auto"
			}

			options := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
			if style == "auto" {
				options = append(options, glamour.WithAutoStyle())
			} else {
				options = append(options, glamour.WithStandardStyle(style))
			}

			renderer, err := glamour.NewTermRenderer(options...)
			if err != nil {
				// Fallback to plain text on error
				fmt.Fprint(w, MsgSyntax)
				return nil
			}
			rendered, err := renderer.Render(MsgSyntax)
			if err != nil {
				fmt.Fprint(w, MsgSyntax)
				return nil
			}
			fmt.Fprint(w, rendered)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// readTemplate takes the template from args or, without one, from stdin
func readTemplate(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadInput)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// loadData decodes a YAML data file. No file means no template data.
func loadData(path string) (interface{}, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrReadData, path).WithDetail("path", path)
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrReadData, path).WithDetail("path", path)
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return data, nil
}
