package styles_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/arthur-debert/tagtmpl/pkg/markup"
	"github.com/arthur-debert/tagtmpl/pkg/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return r
}

func TestDefaultSheetCoversStandardTags(t *testing.T) {
	sheet := styles.Default()
	for _, tag := range markup.StandardTags {
		t.Run(tag, func(t *testing.T) {
			_, ok := sheet.Styles[tag]
			assert.True(t, ok, "bundled sheet should style %s", tag)
		})
	}
	assert.Contains(t, sheet.Tags(), "b")
	assert.IsIncreasing(t, sheet.Tags())
}

func TestParse(t *testing.T) {
	t.Run("literal colors need no definition", func(t *testing.T) {
		sheet, err := styles.Parse([]byte(`
styles:
  hot: {foreground: "#FF0000"}
  ansi: {foreground: "9"}
`))
		require.NoError(t, err)
		assert.Len(t, sheet.Styles, 2)
		assert.NotNil(t, sheet.Colors)
	})

	t.Run("undefined named color", func(t *testing.T) {
		_, err := styles.Parse([]byte("styles:\n  x: {foreground: nope}\n"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
		assert.Equal(t, "x", errors.GetErrorDetails(err)["tag"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := styles.Parse([]byte("styles: [unclosed"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  loud: {bold: true}\n"), 0644))

	sheet, err := styles.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"loud"}, sheet.Tags())

	_, err = styles.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
}

func TestMerge(t *testing.T) {
	base := styles.Default()
	user, err := styles.Parse([]byte(`
colors:
  brand: {light: "#112233", dark: "#445566"}
styles:
  b: {italic: true}
  brand: {foreground: brand}
`))
	require.NoError(t, err)

	merged := base.Merge(user)
	assert.True(t, merged.Styles["b"].Italic, "user style replaces bundled one")
	assert.False(t, merged.Styles["b"].Bold)
	assert.Contains(t, merged.Styles, "brand")
	assert.Contains(t, merged.Styles, markup.TagDanger)
	assert.True(t, base.Styles["b"].Bold, "merge leaves the receiver untouched")

	assert.Equal(t, base.Tags(), base.Merge(nil).Tags())
}

func TestWrappers(t *testing.T) {
	sheet := styles.Default()

	t.Run("ascii profile renders plain text", func(t *testing.T) {
		r := newRenderer(termenv.Ascii)
		out, err := markup.RenderString("{dangerStyle}Stop{/dangerStyle} now", sheet.Wrappers(r))
		require.NoError(t, err)
		assert.Equal(t, "Stop now", out)
	})

	t.Run("true color applies styles", func(t *testing.T) {
		r := newRenderer(termenv.TrueColor)
		style, ok := sheet.Style(r, markup.TagBold)
		require.True(t, ok)

		out, err := markup.RenderString("{boldStyle}Loud{/boldStyle}!", sheet.Wrappers(r))
		require.NoError(t, err)
		assert.Equal(t, style.Render("Loud")+"!", out)
		assert.NotEqual(t, "Loud!", out)
	})

	t.Run("nested styles", func(t *testing.T) {
		r := newRenderer(termenv.TrueColor)
		outer, _ := sheet.Style(r, "b")
		inner, _ := sheet.Style(r, "i")

		out, err := markup.RenderString("{b}a {i}b{/i}{/b}", sheet.Wrappers(r))
		require.NoError(t, err)
		assert.Equal(t, outer.Render("a "+inner.Render("b")), out)
	})

	t.Run("unknown tag", func(t *testing.T) {
		r := newRenderer(termenv.Ascii)
		_, ok := sheet.Style(r, "nope")
		assert.False(t, ok)

		_, err := markup.RenderString("{nope}x{/nope}", sheet.Wrappers(r))
		assert.True(t, errors.IsErrorCode(err, errors.ErrRendererMissing))
	})
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  alert: {foreground: danger, underline: true}\n"), 0644))

	sheet, err := styles.LoadOverlay(styles.Default(), path)
	require.NoError(t, err)
	assert.True(t, sheet.Styles["alert"].Underline)
	assert.Contains(t, sheet.Styles, markup.TagBold)

	require.NoError(t, os.WriteFile(path, []byte("styles:\n  alert: {foreground: nowhere}\n"), 0644))
	_, err = styles.LoadOverlay(styles.Default(), path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
}
