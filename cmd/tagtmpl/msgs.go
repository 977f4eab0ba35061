package tagtmpl

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render {tag}...{/tag} markup templates"
	MsgRenderShort     = "Render a template"
	MsgStripShort      = "Print the plain text of a template"
	MsgTokensShort     = "Show the token stream of a template"
	MsgTreeShort       = "Show the parse tree of a template"
	MsgSaveShort       = "Save a named template"
	MsgShowShort       = "Print a saved template"
	MsgListShort       = "List saved templates"
	MsgDeleteShort     = "Delete a saved template"
	MsgConfigShort     = "Print the effective configuration"
	MsgSyntaxShort     = "Describe the template syntax"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgSaved          = "Saved template '%s'\n"
	MsgDeleted        = "Deleted template '%s'\n"
	MsgNoTemplates    = "No saved templates."
	MsgStageTokenized = "tokenized:"
	MsgStageResolved  = "resolved:"
	MsgVersionFormat  = "tagtmpl version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrTemplateAndSaved = "pass either a template or --saved, not both"
	MsgErrReadInput        = "failed to read template from stdin"
	MsgErrReadData         = "failed to read data file %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format (auto, term, text, json, html, tree)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/tagtmpl/config.toml)"
	MsgFlagData    = "YAML file with data for {{...}} template actions"
	MsgFlagSaved   = "Render a saved template instead of an argument"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/tokens-long.txt
	msgTokensLongRaw string
	MsgTokensLong    = strings.TrimSpace(msgTokensLongRaw)

	//go:embed msgs/save-example.txt
	msgSaveExampleRaw string
	MsgSaveExample    = strings.TrimRight(msgSaveExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/syntax.md
	MsgSyntax string
)
