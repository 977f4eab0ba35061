package styles

import (
	_ "embed"
	"os"
	"sort"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/arthur-debert/tagtmpl/pkg/markup"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
	Faint         bool   `yaml:"faint,omitempty"`
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
	PaddingLeft   int    `yaml:"paddingLeft,omitempty"`
	PaddingRight  int    `yaml:"paddingRight,omitempty"`
}

// Sheet is a parsed style sheet
type Sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Default returns the bundled style sheet
func Default() *Sheet {
	sheet, err := Parse(embeddedStyles)
	if err != nil {
		// the bundled sheet is covered by tests
		panic(err)
	}
	return sheet
}

// Parse decodes a YAML style sheet and checks its color references
func Parse(data []byte) (*Sheet, error) {
	sheet, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return sheet, nil
}

func decode(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, errors.Wrap(err, errors.ErrStyleLoad, "failed to parse style sheet")
	}
	if sheet.Colors == nil {
		sheet.Colors = map[string]ColorDef{}
	}
	if sheet.Styles == nil {
		sheet.Styles = map[string]StyleDef{}
	}
	return &sheet, nil
}

// Validate reports the first style whose colors are neither defined in the
// sheet nor literal
func (s *Sheet) Validate() error {
	for _, tag := range s.Tags() {
		def := s.Styles[tag]
		for _, name := range []string{def.Foreground, def.Background} {
			if name == "" {
				continue
			}
			if _, ok := s.Colors[name]; !ok && !isLiteralColor(name) {
				return errors.Newf(errors.ErrStyleLoad, "style %q uses undefined color %q", tag, name).
					WithDetail("tag", tag)
			}
		}
	}
	return nil
}

// LoadFile reads and parses a YAML style sheet from disk
func LoadFile(path string) (*Sheet, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadOverlay reads a style sheet from disk and merges it over base. The
// file may use colors that only base defines.
func LoadOverlay(base *Sheet, path string) (*Sheet, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	overlay, err := decode(data)
	if err != nil {
		return nil, err
	}
	merged := base.Merge(overlay)
	if err := merged.Validate(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleLoad, "invalid styles file %s", path).
			WithDetail("path", path)
	}
	return merged, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleLoad, "failed to read styles file %s", path).
			WithDetail("path", path)
	}
	return data, nil
}

// Merge returns a copy of s with the colors and styles of other laid over it
func (s *Sheet) Merge(other *Sheet) *Sheet {
	merged := &Sheet{
		Colors: make(map[string]ColorDef, len(s.Colors)),
		Styles: make(map[string]StyleDef, len(s.Styles)),
	}
	for _, src := range []*Sheet{s, other} {
		if src == nil {
			continue
		}
		for k, v := range src.Colors {
			merged.Colors[k] = v
		}
		for k, v := range src.Styles {
			merged.Styles[k] = v
		}
	}
	return merged
}

// Tags returns the styled tag names, sorted
func (s *Sheet) Tags() []string {
	tags := make([]string, 0, len(s.Styles))
	for tag := range s.Styles {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Style builds the lipgloss style for tag using renderer r
func (s *Sheet) Style(r *lipgloss.Renderer, tag string) (lipgloss.Style, bool) {
	def, ok := s.Styles[tag]
	if !ok {
		return r.NewStyle(), false
	}
	return s.build(r, def), true
}

// Wrappers returns one markup wrapper per styled tag
func (s *Sheet) Wrappers(r *lipgloss.Renderer) map[string]markup.Wrapper[string] {
	wrappers := make(map[string]markup.Wrapper[string], len(s.Styles))
	for tag, def := range s.Styles {
		style := s.build(r, def)
		wrappers[tag] = markup.Wrap(func(text string) string { return style.Render(text) })
	}
	return wrappers
}

func (s *Sheet) color(name string) lipgloss.TerminalColor {
	if def, ok := s.Colors[name]; ok {
		return lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	return lipgloss.Color(name)
}

// build constructs a lipgloss style from a style definition
func (s *Sheet) build(r *lipgloss.Renderer, def StyleDef) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Strikethrough {
		style = style.Strikethrough(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(s.color(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(s.color(def.Background))
	}

	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// isLiteralColor accepts hex colors and ANSI color numbers
func isLiteralColor(name string) bool {
	if len(name) > 1 && name[0] == '#' {
		return true
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return false
		}
	}
	return name != ""
}
