// Package testdata provides UCD data files for the tests of this module.
//
// Files live in sub-directory "ucd". They may be refreshed with
//
//	go run download.go
package testdata

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

//go:generate go run download.go

// Jamo is the content of the UCD file Jamo.txt.
//go:embed ucd/Jamo.txt
var Jamo []byte

// UCDReader returns a reader for the given UCD file.
func UCDReader(file string) (io.Reader, error) {
	if file == "Jamo.txt" {
		return bytes.NewReader(Jamo), nil
	}
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// UCDPath returns the path for the given UCD file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}
