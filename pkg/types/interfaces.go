package types

import (
	"io/fs"
)

// FS is the filesystem interface required for luavend operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.FileInfo, error)

	// Lstat is used to detect entry kinds without following links.
	// For testing, Lstat can fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}
