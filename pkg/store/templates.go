package store

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
)

var templateNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)

// TemplatesKey holds saved templates by name
var TemplatesKey = Key[map[string]string]{
	Name:     "templates",
	Validate: validateTemplates,
}

// ValidateTemplateName checks a saved template name
func ValidateTemplateName(name string) error {
	if !templateNamePattern.MatchString(name) {
		return errors.Newf(errors.ErrInvalidInput, "invalid template name %q", name).
			WithDetail("name", name)
	}
	return nil
}

func validateTemplates(templates map[string]string) error {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ValidateTemplateName(name); err != nil {
			return err
		}
		if strings.TrimSpace(templates[name]) == "" {
			return fmt.Errorf("template %s is empty", name)
		}
	}
	return nil
}

// Templates is the saved template collection on top of a Backend
type Templates struct {
	backend Backend
}

// NewTemplates wraps b
func NewTemplates(b Backend) *Templates {
	return &Templates{backend: b}
}

func (t *Templates) load() (map[string]string, error) {
	all, ok, err := Get(t.backend, TemplatesKey)
	if err != nil {
		return nil, err
	}
	if !ok || all == nil {
		all = map[string]string{}
	}
	return all, nil
}

// Save stores body under name, replacing any previous template
func (t *Templates) Save(name, body string) error {
	if err := ValidateTemplateName(name); err != nil {
		return err
	}
	all, err := t.load()
	if err != nil {
		return err
	}
	all[name] = body
	return Set(t.backend, TemplatesKey, all)
}

// Lookup returns the template saved as name
func (t *Templates) Lookup(name string) (string, error) {
	all, err := t.load()
	if err != nil {
		return "", err
	}
	body, ok := all[name]
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "no saved template named %s", name).
			WithDetail("name", name)
	}
	return body, nil
}

// Names lists saved template names in sorted order
func (t *Templates) Names() ([]string, error) {
	all, err := t.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the template saved as name
func (t *Templates) Delete(name string) error {
	all, err := t.load()
	if err != nil {
		return err
	}
	if _, ok := all[name]; !ok {
		return errors.Newf(errors.ErrNotFound, "no saved template named %s", name).
			WithDetail("name", name)
	}
	delete(all, name)
	if len(all) == 0 {
		return Remove(t.backend, TemplatesKey)
	}
	return Set(t.backend, TemplatesKey, all)
}
