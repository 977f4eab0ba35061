package markup

// Style tag names covered by the bundled style sheet
const (
	TagDanger  = "dangerStyle"
	TagWarning = "warningStyle"
	TagSuccess = "successStyle"
	TagBold    = "boldStyle"
	TagItalic  = "italicStyle"
	TagRed     = "redStyle"
)

// StandardTags lists the style tags every style sheet is expected to cover
var StandardTags = []string{TagDanger, TagWarning, TagSuccess, TagBold, TagItalic, TagRed}
