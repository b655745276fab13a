//go:build !unix

package program

import (
	"os"
	"path/filepath"
	"strings"
)

// isExecutable accepts files whose extension is listed in PATHEXT.
func isExecutable(path string) bool {
	exts := os.Getenv("PATHEXT")
	if exts == "" {
		exts = ".com;.exe;.bat;.cmd"
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range strings.Split(strings.ToLower(exts), ";") {
		if e != "" && e == ext {
			return true
		}
	}
	return false
}
