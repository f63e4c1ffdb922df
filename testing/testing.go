//coverage:ignore file

// Package testing moves the working directory of a test binary to the
// repository root, so relative paths such as assets/checkout.yml resolve the
// same way they do for the running service. Import it for side effects only.
package testing

import (
	"os"
	"path/filepath"
	"runtime"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("testing: go.mod not found above " + filename)
		}
		dir = parent
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
