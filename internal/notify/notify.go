// Package notify records notification tokens by appending them to a file.
package notify

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// DefaultPerm is the mode used when the target file has to be created.
// The process umask still applies.
const DefaultPerm os.FileMode = 0o666

// appendFlags open the file for reading and appending, creating it if needed.
// The file is never truncated.
const appendFlags = os.O_RDWR | os.O_APPEND | os.O_CREATE

// Invocation is the ordered (path, token) pair a single run operates on.
type Invocation struct {
	Path  string
	Token string
}

// ParseArgs builds an Invocation from the positional values that follow the
// program name. Values beyond the second are ignored.
func ParseArgs(program string, args []string) (Invocation, error) {
	if len(args) < 2 {
		return Invocation{}, &UsageError{Program: program}
	}

	return Invocation{Path: args[0], Token: args[1]}, nil
}

// Appender appends tokens to files.
type Appender struct {
	Fs   afero.Fs    // Filesystem abstraction for testing (defaults to OsFs)
	Perm os.FileMode // Mode for newly created files (defaults to DefaultPerm)
}

// Run appends inv.Token to inv.Path.
func (a *Appender) Run(inv Invocation) error {
	return a.Append(inv.Path, inv.Token)
}

// Append writes token's bytes to the end of the file at path in a single
// write, without any delimiter. On open failure nothing is written.
func (a *Appender) Append(path, token string) error {
	f, err := a.getFs().OpenFile(path, appendFlags, a.getPerm())
	if err != nil {
		return &OpenError{Path: path, Err: platformError(err)}
	}

	var writeErr, closeErr error

	if _, err := f.Write([]byte(token)); err != nil {
		writeErr = &WriteError{Path: path, Err: platformError(err)}
	}

	if err := f.Close(); err != nil {
		closeErr = &CloseError{Path: path, Err: platformError(err)}
	}

	return errors.Join(writeErr, closeErr)
}

// getFs returns the filesystem to use, defaulting to OsFs if not set.
func (a *Appender) getFs() afero.Fs {
	if a.Fs == nil {
		return afero.NewOsFs()
	}

	return a.Fs
}

func (a *Appender) getPerm() os.FileMode {
	if a.Perm == 0 {
		return DefaultPerm
	}

	return a.Perm
}
