// SPDX-FileCopyrightText: 2025 GSI Helmholtzzentrum für Schwerionenforschung GmbH
//
// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"

	"github.com/spf13/afero"
)

// FailingFs wraps an afero.Fs and hands out files whose Write and Close
// fail with the configured errors. A nil error leaves that call untouched.
type FailingFs struct {
	afero.Fs
	WriteErr error
	CloseErr error
}

// NewFailingFs creates a FailingFs backed by an in-memory filesystem.
func NewFailingFs(writeErr, closeErr error) *FailingFs {
	return &FailingFs{
		Fs:       afero.NewMemMapFs(),
		WriteErr: writeErr,
		CloseErr: closeErr,
	}
}

// OpenFile implements afero.Fs.
func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	return &failingFile{File: file, writeErr: f.WriteErr, closeErr: f.CloseErr}, nil
}

type failingFile struct {
	afero.File
	writeErr error
	closeErr error
}

func (f *failingFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}

	return f.File.Write(p)
}

func (f *failingFile) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

func (f *failingFile) Close() error {
	err := f.File.Close()
	if f.closeErr != nil {
		return f.closeErr
	}

	return err
}
