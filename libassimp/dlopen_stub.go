//go:build !(darwin || freebsd || linux)

package libassimp

import (
	apperr "github.com/meshforge/assimp-go/errors"
)

func openLibrary(path string) (uintptr, error) {
	return 0, apperr.Unsupported(apperr.PhaseLoad, "dynamic library loading is not supported on this platform")
}

func closeLibrary(handle uintptr) error {
	return nil
}

func defaultLibraryNames() []string {
	return nil
}
