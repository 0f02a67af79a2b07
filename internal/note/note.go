// Package note resolves, validates and initialises dated markdown notes under
// the user's notes directory.
package note

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/go-ports/notetool/internal/apperr"
)

// DirName is the notes directory created directly under the home directory.
const DirName = "notes"

// Ext is the extension appended to every note title.
const Ext = ".md"

// DateLayout formats the creation date written into the header.
const DateLayout = "2006-01-02"

// Request describes the note being created by a single invocation.
// Path is empty until the resolver attaches it.
type Request struct {
	Title string
	Date  string
	Path  string
}

// NewRequest validates title and stamps the request with now's local date.
func NewRequest(title string, now time.Time) (*Request, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Request{
		Title: title,
		Date:  now.Local().Format(DateLayout),
	}, nil
}

// ValidateTitle rejects titles that would not produce a file directly inside
// the notes directory.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		return apperr.New(apperr.KindInvalidArgument, "note title must not be empty")
	case trimmed == "." || trimmed == "..":
		return apperr.New(apperr.KindInvalidArgument, "invalid note title %q", title)
	case strings.ContainsRune(title, '/') || strings.ContainsRune(title, filepath.Separator):
		return apperr.New(apperr.KindInvalidArgument, "note title %q must not contain a path separator", title)
	}
	return nil
}

// FileName returns the on-disk file name for title.
func FileName(title string) string {
	return title + Ext
}

// RenderHeader produces the initial note content: an H1 with the title, an H2
// with the date and one trailing blank line. The title is written verbatim.
func RenderHeader(title, date string) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n## ")
	sb.WriteString(date)
	sb.WriteString("\n\n")
	return sb.String()
}
