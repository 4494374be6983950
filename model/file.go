package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName    = errors.New("file name is empty")
	ErrNegativeSize = errors.New("file size is negative")
)

// File is a listed file. It is a value: once built it never changes.
type File struct {
	Name         string
	Size         int64
	Extension    string
	HasExtension bool
}

type FileOption func(*File)

// WithExtension sets the optional extension, without the leading dot.
func WithExtension(ext string) FileOption {
	return func(f *File) {
		f.Extension = ext
		f.HasExtension = true
	}
}

// NewFile validates the required fields and applies the optional ones.
func NewFile(name string, size int64, opts ...FileOption) (File, error) {
	if name == "" {
		return File{}, ErrEmptyName
	}
	if size < 0 {
		return File{}, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	f := File{Name: name, Size: size}
	for _, opt := range opts {
		opt(&f)
	}
	return f, nil
}

// ParseFileName splits a listed name on its last dot. A dot in first or last
// position is part of the name.
func ParseFileName(listed string) (base string, ext string, ok bool) {
	i := strings.LastIndex(listed, ".")
	if i <= 0 || i == len(listed)-1 {
		return listed, "", false
	}
	return listed[:i], listed[i+1:], true
}

func (f File) FullName() string {
	if !f.HasExtension {
		return f.Name
	}
	return f.Name + "." + f.Extension
}
