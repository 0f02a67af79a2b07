package note

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-ports/notetool/internal/apperr"
)

// Create writes the header for title and date to a new file at path.
//
// The existence check is repeated here and the file is opened with O_EXCL, so
// a file that appeared after Resolve is reported as a duplicate rather than
// overwritten. On a write failure the partial file is removed.
func Create(path, title, date string) error {
	if _, err := os.Lstat(path); err == nil {
		return apperr.New(apperr.KindDuplicate, "file already exists: %s", path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G304 -- path is built by Resolver under the notes directory
	if errors.Is(err, fs.ErrExist) {
		return apperr.New(apperr.KindDuplicate, "file already exists: %s", path)
	}
	if err != nil {
		return apperr.Wrap(apperr.KindIO, err, "create %s", path)
	}

	if _, err := f.WriteString(RenderHeader(title, date)); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return apperr.Wrap(apperr.KindIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return apperr.Wrap(apperr.KindIO, err, "write %s", path)
	}
	return nil
}

// CreateRequest initialises the file described by a resolved request.
func CreateRequest(req *Request) error {
	if req.Path == "" {
		return apperr.New(apperr.KindIO, "note %q has no resolved path", req.Title)
	}
	return Create(req.Path, req.Title, req.Date)
}
