// Package storage defines the client state-directory abstraction.
package storage

import "os"

// Provider is the interface for state-directory file operations. Entries are
// flat file names; nested paths are rejected.
type Provider interface {
	// List returns the names of every file under the root with the given
	// extension, sorted lexicographically.
	List(ext string) ([]string, error)
	// Read returns the raw bytes of the named file.
	Read(name string) ([]byte, error)
	// Write atomically writes content to the named file with the given mode.
	Write(name string, content []byte, mode os.FileMode) error
	// Delete removes the named file.
	Delete(name string) error
	// Root returns the absolute path of the directory.
	Root() string
}
