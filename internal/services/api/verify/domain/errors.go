package domain

import (
	perr "callerverify/internal/platform/errors"
)

// OpDirectory labels directory failures
const OpDirectory = "directory"

// DirectoryUnavailable wraps a directory transport or decode failure
func DirectoryUnavailable(err error, format string, a ...any) error {
	return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUnavailable, format, a...), OpDirectory)
}

// DirectoryMissing reports a number the directory does not know
func DirectoryMissing(phone string) error {
	return perr.WithOp(perr.Newf(perr.ErrorCodeNotFound, "phone number %s not found in directory", phone), OpDirectory)
}

// IsDirectoryUnavailable reports whether err came from the directory
func IsDirectoryUnavailable(err error) bool {
	e, ok := perr.As(err)
	return ok && e.Op() == OpDirectory
}
