package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV keeps every key in a single JSON object on disk. The whole file is
// rewritten on each change.
type FileKV struct {
	mu   sync.Mutex
	path string
}

func NewFileKV(path string) (*FileKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("cannot create directory for %v: %w", path, err)
	}

	kv := &FileKV{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			return nil, fmt.Errorf("cannot initialise %v: %w", path, err)
		}
	} else if err != nil {
		return nil, err
	}

	return kv, nil
}

func (f *FileKV) read() (map[string]string, error) {
	fileBytes, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	} else if err != nil {
		return nil, err
	}

	data := map[string]string{}
	if len(fileBytes) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(fileBytes, &data); err != nil {
		return nil, fmt.Errorf("corrupt local db %v: %w", f.path, err)
	}
	return data, nil
}

func (f *FileKV) commit(data map[string]string) error {
	dataBytes, err := json.MarshalIndent(data, "", "	")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, dataBytes, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	val, ok := data[key]
	return val, ok, nil
}

func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}
	data[key] = value
	return f.commit(data)
}

func (f *FileKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return f.commit(data)
}

func (f *FileKV) Close() error {
	return nil
}
