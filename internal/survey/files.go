package survey

import (
	"encoding/json"
	"errors"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

var (
	ErrNoFile  = errors.New("no file uploaded")
	ErrNotJSON = errors.New("file is not JSON")
)

// IsJSONFile accepts a file whose content type is application/json or whose
// name ends in .json.
func IsJSONFile(filename, contentType string) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "application/json" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".json")
}

// CheckImport validates an upload before it is sent to the API.
func CheckImport(filename, contentType string) error {
	if filename == "" {
		return ErrNoFile
	}
	if !IsJSONFile(filename, contentType) {
		return ErrNotJSON
	}
	return nil
}

func ExportFilename(t time.Time) string {
	return "survey_" + t.Format("2006-01-02") + ".json"
}

// MarshalExport renders a model the way exported files are written.
func MarshalExport(m *topsis.Model) ([]byte, error) {
	out := *m
	if out.ExpertInputs == nil {
		out.ExpertInputs = []topsis.ExpertInput{}
	}
	return json.MarshalIndent(out, "", "  ")
}

// Initial is the uppercased first letter of name, used for avatars. Names
// are NFC-normalized first so a decomposed accent stays on its letter.
func Initial(name string) string {
	r, _ := utf8.DecodeRuneInString(norm.NFC.String(strings.TrimSpace(name)))
	if r == utf8.RuneError {
		return ""
	}
	return cases.Upper(language.Und).String(string(r))
}
