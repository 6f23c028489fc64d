// Package billy backs a tier with a go-billy filesystem: osfs for a disk tier
// that survives restarts, memfs for tests.
package billy

import (
	"context"
	"errors"
	"io"
	"os"
	"path"

	gobilly "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	keys "github.com/unkn0wn-root/tiercache/internal/util"
	pr "github.com/unkn0wn-root/tiercache/provider"
)

// FS stores one file per key under <root>/<ab>/<sha256(key)>.
// Writes go to a temp file that is renamed into place, so readers never see a
// partially written entry on filesystems with atomic rename.
type FS struct {
	fs gobilly.Filesystem
}

var _ pr.Provider = (*FS)(nil)

type Config struct {
	// Filesystem to use. Nil => osfs rooted at Dir.
	Filesystem gobilly.Filesystem
	Dir        string
}

func New(cfg Config) (*FS, error) {
	fsys := cfg.Filesystem
	if fsys == nil {
		if cfg.Dir == "" {
			return nil, errors.New("billy provider: Filesystem or Dir is required")
		}
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, err
		}
		fsys = osfs.New(cfg.Dir)
	}
	return &FS{fs: fsys}, nil
}

func (p *FS) Get(_ context.Context, key string) ([]byte, bool, error) {
	f, err := p.fs.Open(keys.HashedPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (p *FS) Set(_ context.Context, key string, value []byte, _ int64) (bool, error) {
	name := keys.HashedPath(key)
	dir := path.Dir(name)
	if err := p.fs.MkdirAll(dir, 0o755); err != nil {
		return false, err
	}

	tmp, err := util.TempFile(p.fs, dir, ".tmp-")
	if err != nil {
		return false, err
	}
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = p.fs.Remove(tmp.Name())
		return false, err
	}
	if err := tmp.Close(); err != nil {
		_ = p.fs.Remove(tmp.Name())
		return false, err
	}
	if err := p.fs.Rename(tmp.Name(), name); err != nil {
		_ = p.fs.Remove(tmp.Name())
		return false, err
	}
	return true, nil
}

func (p *FS) Del(_ context.Context, key string) error {
	err := p.fs.Remove(keys.HashedPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (p *FS) Close(context.Context) error { return nil }

// Unwrap returns the underlying billy.Filesystem.
func (p *FS) Unwrap() gobilly.Filesystem { return p.fs }
