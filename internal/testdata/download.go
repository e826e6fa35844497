// +build ignore

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// UCD version the tables of package jamo are checked against.
const version = "11.0.0"

var files = []string{
	"Jamo.txt",
}

func main() {
	for _, name := range files {
		url := fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/%s", version, name)
		if err := download(url, filepath.Join("ucd", name)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return writeFile(path, resp.Body)
}

func writeFile(path string, r io.Reader) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
