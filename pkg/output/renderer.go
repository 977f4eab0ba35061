package output

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/tagtmpl/pkg/config"
	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/arthur-debert/tagtmpl/pkg/logging"
	"github.com/arthur-debert/tagtmpl/pkg/markup"
	"github.com/arthur-debert/tagtmpl/pkg/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Options configures a Renderer
type Options struct {
	// Format must not be FormatAuto; see Resolve
	Format Format
	// Sheet defaults to styles.Default()
	Sheet *styles.Sheet
	// UnknownTags is config.UnknownTagsError (default) or config.UnknownTagsPlain
	UnknownTags string
	// NoColor forces plain styling in term and tree output
	NoColor bool
	// Parser defaults to a parser without tracing
	Parser *markup.Parser
	// Lipgloss overrides the lipgloss renderer created for the writer
	Lipgloss *lipgloss.Renderer
}

// Renderer turns template strings into formatted output on a writer
type Renderer struct {
	writer   io.Writer
	opts     Options
	lipgloss *lipgloss.Renderer
	html     *bluemonday.Policy
}

var htmlClassPattern = regexp.MustCompile(`^tag-[a-zA-Z]+$`)

// NewRenderer creates a new Renderer writing to w
func NewRenderer(w io.Writer, opts Options) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")

	if opts.Format == FormatAuto {
		return nil, errors.New(errors.ErrOutputFormat, "format must be resolved before rendering")
	}
	if opts.Sheet == nil {
		opts.Sheet = styles.Default()
	}
	if opts.UnknownTags == "" {
		opts.UnknownTags = config.UnknownTagsError
	}
	if opts.Parser == nil {
		opts.Parser = markup.NewParser()
	}

	lg := opts.Lipgloss
	if lg == nil {
		lg = lipgloss.NewRenderer(w)
	}
	if opts.NoColor {
		lg.SetColorProfile(termenv.Ascii)
	}

	log.Debug().
		Str("format", opts.Format.String()).
		Bool("noColor", opts.NoColor).
		Str("colorProfile", fmt.Sprintf("%v", lg.ColorProfile())).
		Msg("Creating renderer")

	policy := bluemonday.NewPolicy()
	policy.AllowElements("span")
	policy.AllowAttrs("class").Matching(htmlClassPattern).OnElements("span")

	return &Renderer{
		writer:   w,
		opts:     opts,
		lipgloss: lg,
		html:     policy,
	}, nil
}

// Render expands data into tmpl, parses the result and writes it in the
// configured format followed by a newline.
func (r *Renderer) Render(tmpl string, data interface{}) error {
	log := logging.GetLogger("output.Renderer")
	done := logging.LogOperationStart(log, "render")
	defer done()

	expanded, err := ExpandTemplate(tmpl, data)
	if err != nil {
		return err
	}

	nodes := r.opts.Parser.Parse(expanded)
	log.Trace().Int("nodes", len(nodes)).Strs("tags", markup.Tags(nodes)).Msg("Template parsed")

	out, err := r.Format(nodes)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(r.writer, out)
	return err
}

// Format renders a parsed tree in the configured format
func (r *Renderer) Format(nodes []markup.Node) (string, error) {
	switch r.opts.Format {
	case FormatTerminal:
		return r.join(markup.NewRenderer(markup.Identity, r.opts.Sheet.Wrappers(r.lipgloss)), nodes)
	case FormatText:
		return r.join(markup.NewRenderer(markup.Identity, r.sheetWrappers(markup.Join)), nodes)
	case FormatHTML:
		return r.formatHTML(nodes)
	case FormatJSON:
		return r.formatJSON(nodes)
	case FormatTree:
		return r.formatTree(nodes)
	default:
		return "", errors.Newf(errors.ErrOutputFormat, "cannot render format %s", r.opts.Format)
	}
}

// join renders nodes to a single string, honoring the unknown tag policy
func (r *Renderer) join(mr *markup.Renderer[string], nodes []markup.Node) (string, error) {
	if r.opts.UnknownTags == config.UnknownTagsPlain {
		mr.WithFallback(markup.Join)
	}
	parts, err := mr.Render(nodes)
	if err != nil {
		return "", err
	}
	return markup.Join(parts), nil
}

// sheetWrappers gives every styled tag the same wrapper
func (r *Renderer) sheetWrappers(w markup.Wrapper[string]) map[string]markup.Wrapper[string] {
	wrappers := make(map[string]markup.Wrapper[string], len(r.opts.Sheet.Styles))
	for tag := range r.opts.Sheet.Styles {
		wrappers[tag] = w
	}
	return wrappers
}

// checkTags reports the first tag the style sheet does not know, when the
// policy asks for it. Formats that do not style still validate the tags.
func (r *Renderer) checkTags(nodes []markup.Node) error {
	if r.opts.UnknownTags == config.UnknownTagsPlain {
		return nil
	}
	for _, tag := range markup.Tags(nodes) {
		if _, ok := r.opts.Sheet.Styles[tag]; !ok {
			return errors.Newf(errors.ErrRendererMissing, "no renderer for tag %q", tag).
				WithDetail("tag", tag)
		}
	}
	return nil
}

func (r *Renderer) formatHTML(nodes []markup.Node) (string, error) {
	wrappers := make(map[string]markup.Wrapper[string], len(r.opts.Sheet.Styles))
	for tag := range r.opts.Sheet.Styles {
		wrappers[tag] = span(tag)
	}
	out, err := r.join(markup.NewRenderer(html.EscapeString, wrappers), nodes)
	if err != nil {
		return "", err
	}
	return r.html.Sanitize(out), nil
}

// span wraps children in <span class="tag-NAME">
func span(tag string) markup.Wrapper[string] {
	return func(children []string) string {
		return `<span class="tag-` + tag + `">` + markup.Join(children) + `</span>`
	}
}

func (r *Renderer) formatJSON(nodes []markup.Node) (string, error) {
	if err := r.checkTags(nodes); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode tree")
	}
	return string(data), nil
}

func (r *Renderer) formatTree(nodes []markup.Node) (string, error) {
	if err := r.checkTags(nodes); err != nil {
		return "", err
	}

	printer := pterm.DefaultTree.WithRoot(pterm.TreeNode{
		Text:     "template",
		Children: treeNodes(nodes),
	})
	if r.opts.NoColor {
		printer = printer.WithTreeStyle(pterm.NewStyle()).WithTextStyle(pterm.NewStyle())
	}

	out, err := printer.Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render tree")
	}
	return strings.TrimRight(out, "\n"), nil
}

func treeNodes(nodes []markup.Node) []pterm.TreeNode {
	out := make([]pterm.TreeNode, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case markup.Leaf:
			out = append(out, pterm.TreeNode{Text: strconv.Quote(string(v))})
		case markup.Element:
			out = append(out, pterm.TreeNode{
				Text:     "{" + v.Tag + "}",
				Children: treeNodes(v.Children),
			})
		}
	}
	return out
}
