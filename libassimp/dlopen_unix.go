//go:build darwin || freebsd || linux

package libassimp

import (
	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

func defaultLibraryNames() []string {
	return []string{
		"libassimp.so.5",
		"libassimp.so",
		"libassimp.5.dylib",
		"libassimp.dylib",
	}
}
