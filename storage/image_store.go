package storage

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"
)

// ImageStore persists uploaded image bytes under a generated, opaque filename.
type ImageStore interface {
	Store(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// DiskImageStore writes uploads into a single directory.
type DiskImageStore struct {
	dir   string
	token func() string
}

func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create image dir %s", dir)
	}
	return &DiskImageStore{dir: dir, token: randomToken}, nil
}

func (s *DiskImageStore) Dir() string {
	return s.dir
}

// randomToken is a random numeric prefix. It avoids accidental overwrites; it is not a secret.
func randomToken() string {
	return strconv.FormatFloat(rand.Float64(), 'f', -1, 64)
}

// GenerateFilename prefixes the base of originalName with token.
func GenerateFilename(token, originalName string) string {
	return token + filepath.Base(filepath.Clean("/"+originalName))
}

const maxNameAttempts = 3

func (s *DiskImageStore) Store(ctx context.Context, originalName string, r io.Reader) (string, error) {
	var (
		name string
		f    *os.File
		err  error
	)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name = GenerateFilename(s.token(), originalName)
		f, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, os.ErrExist) {
			break
		}
	}
	if err != nil {
		return "", errors.Wrap(err, "create image file")
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", errors.Wrap(err, "write image file")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", errors.Wrap(err, "close image file")
	}

	log.Ctx(ctx).Debug().Str("component", "DiskImageStore").Str("filename", name).Msg("image stored")
	return name, nil
}
