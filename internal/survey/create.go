// Package survey holds the form and view state behind the survey pages.
package survey

import (
	"errors"
	"net/url"
	"strings"

	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

type FieldKind string

const (
	KindCriterion   FieldKind = "criterion"
	KindAlternative FieldKind = "alternative"
)

var ErrEmptyName = errors.New("survey name required")

// CreateForm is the state of the "create survey" form. Both dynamic lists
// always hold at least one field.
type CreateForm struct {
	Name         string
	Criteria     []string
	Alternatives []string
}

func NewCreateForm() *CreateForm {
	return &CreateForm{Criteria: []string{""}, Alternatives: []string{""}}
}

// ParseCreateForm reads the name, criteria and alternatives fields.
func ParseCreateForm(values url.Values) *CreateForm {
	f := &CreateForm{
		Name:         values.Get("name"),
		Criteria:     append([]string(nil), values["criteria"]...),
		Alternatives: append([]string(nil), values["alternatives"]...),
	}
	if len(f.Criteria) == 0 {
		f.Criteria = []string{""}
	}
	if len(f.Alternatives) == 0 {
		f.Alternatives = []string{""}
	}
	return f
}

func (f *CreateForm) list(kind FieldKind) *[]string {
	if kind == KindCriterion {
		return &f.Criteria
	}
	return &f.Alternatives
}

// Add appends an empty field of the given kind.
func (f *CreateForm) Add(kind FieldKind) {
	l := f.list(kind)
	*l = append(*l, "")
}

// Remove drops field i of the given kind. The last remaining field and out of
// range indexes are ignored.
func (f *CreateForm) Remove(kind FieldKind, i int) {
	l := f.list(kind)
	if len(*l) <= 1 || i < 0 || i >= len(*l) {
		return
	}
	*l = append((*l)[:i:i], (*l)[i+1:]...)
}

// Request builds the API payload, trimming names and dropping blank entries.
func (f *CreateForm) Request() (topsis.ModelCreate, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return topsis.ModelCreate{}, ErrEmptyName
	}
	return topsis.ModelCreate{
		Name:         name,
		Criteria:     nonBlank(f.Criteria),
		Alternatives: nonBlank(f.Alternatives),
	}, nil
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
