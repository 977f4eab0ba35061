package output

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
)

// ExpandTemplate runs Go template actions in tmpl against data. Markup tags
// are left alone since {b} is not template syntax. Without actions, or with
// nil data, tmpl is returned unchanged.
func ExpandTemplate(tmpl string, data interface{}) (string, error) {
	if data == nil || !strings.Contains(tmpl, "{{") {
		return tmpl, nil
	}

	t, err := template.New("template").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTemplateExec, "failed to parse template")
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.ErrTemplateExec, "failed to execute template")
	}
	return buf.String(), nil
}
