package main

import (
	"fmt"
	"os"
	"path/filepath"
)

type SampleWriter interface {
	Write(p []byte) (n int, err error)
	Close() error
	Sync() error
}

type SampleStore interface {
	GetWriter(name string) (SampleWriter, error)
}

type FileSampleStore struct {
	root      string
	openFlags int
}

func NewFileSampleStore(root string, openFlags int) (ss SampleStore, e error) {
	if e = os.MkdirAll(root, 0755); e != nil {
		e = fmt.Errorf("cannot init file store: %w", e)
		return
	}

	ss = &FileSampleStore{
		root,
		openFlags,
	}
	return
}

// GetWriter creates (or truncates) the named file under the store root.
func (f *FileSampleStore) GetWriter(name string) (sw SampleWriter, e error) {
	file, e := os.OpenFile(filepath.Join(f.root, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC|f.openFlags, 0644)

	if e != nil {
		return nil, e
	}

	return file, nil
}
