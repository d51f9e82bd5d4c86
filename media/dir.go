package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"venue-webapp/store"
)

// DirStorage keeps images as files in a local directory.
type DirStorage struct {
	dir string
}

func NewDirStorage(dir string) (*DirStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create media dir %v: %w", dir, err)
	}
	return &DirStorage{dir: dir}, nil
}

func (d *DirStorage) path(name string) (string, error) {
	clean, ok := validName(name)
	if !ok {
		return "", fmt.Errorf("media %q: %w", name, store.ErrNotFound)
	}
	return filepath.Join(d.dir, clean), nil
}

func (d *DirStorage) Save(_ context.Context, name, _ string, r io.Reader) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", name, err)
	}
	if _, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1)); err != nil {
		f.Close()
		os.Remove(p)
		return fmt.Errorf("cannot write %v: %w", name, err)
	}
	return f.Close()
}

func (d *DirStorage) Open(_ context.Context, name string) (io.ReadCloser, string, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(p)
	if os.IsNotExist(err) {
		return nil, "", fmt.Errorf("media %v: %w", name, store.ErrNotFound)
	}
	if err != nil {
		return nil, "", err
	}
	return f, ContentType(name), nil
}

func (d *DirStorage) Delete(_ context.Context, name string) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if os.IsNotExist(err) {
		return fmt.Errorf("media %v: %w", name, store.ErrNotFound)
	}
	return err
}
