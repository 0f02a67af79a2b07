package note

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/go-ports/notetool/internal/apperr"
)

// Resolver computes destination paths under <home>/notes.
type Resolver struct {
	// HomeDir looks up the user's home directory. Defaults to os.UserHomeDir.
	HomeDir func() (string, error)
	Log     *zap.Logger
}

// NewResolver returns a Resolver backed by os.UserHomeDir.
func NewResolver(log *zap.Logger) *Resolver {
	return &Resolver{HomeDir: os.UserHomeDir, Log: log}
}

func (r *Resolver) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// Dir returns <home>/notes without touching the filesystem.
func (r *Resolver) Dir() (string, error) {
	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	home, err := homeDir()
	if err != nil {
		return "", apperr.Wrap(apperr.KindEnvironment, err, "couldn't find your home dir")
	}
	if home == "" {
		return "", apperr.New(apperr.KindEnvironment, "couldn't find your home dir")
	}
	return filepath.Join(home, DirName), nil
}

// Resolve ensures the notes directory exists and returns the path for title.
// It fails with a DuplicateError when that path is already taken. The only
// side effect is creating the notes directory.
func (r *Resolver) Resolve(title string) (string, error) {
	dir, err := r.Dir()
	if err != nil {
		return "", err
	}
	if err := r.ensureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(title))
	if _, err := os.Lstat(path); err == nil {
		return "", apperr.New(apperr.KindDuplicate, "file already exists: %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", apperr.Wrap(apperr.KindIO, err, "stat %s", path)
	}
	return path, nil
}

// ResolveRequest attaches the resolved path to req.
func (r *Resolver) ResolveRequest(req *Request) error {
	path, err := r.Resolve(req.Title)
	if err != nil {
		return err
	}
	req.Path = path
	return nil
}

// ensureDir creates dir. An existing directory is not an error.
func (r *Resolver) ensureDir(dir string) error {
	err := os.Mkdir(dir, 0o755)
	if err == nil {
		r.logger().Debug("created notes directory", zap.String("dir", dir))
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return apperr.Wrap(apperr.KindIO, err, "create notes directory")
	}
	info, statErr := os.Stat(dir)
	if statErr != nil {
		return apperr.Wrap(apperr.KindIO, statErr, "create notes directory")
	}
	if !info.IsDir() {
		return apperr.New(apperr.KindIO, "create notes directory: %s exists and is not a directory", dir)
	}
	return nil
}
