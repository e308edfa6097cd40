// Package file_path converts between filesystem paths and the file:// URIs
// editors send over LSP.
package file_path

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Clean is a combination of filepath.Clean and filepath.ToSlash
//
// Example:
//
//	C:\H\ -> C:/H
func Clean(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// ToURI turns an absolute path into a file:// URI.
func ToURI(path string) string {
	p := Clean(path)
	if len(p) >= 2 && p[1] == ':' {
		// file:///C:/path
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// FromURI converts a file:// URI into an absolute filesystem path.
func FromURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid URI: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported scheme %q (must be file)", u.Scheme)
	}

	p := u.Path
	// strip the leading slash before a drive letter
	if strings.HasPrefix(p, "/") && len(p) >= 3 && p[2] == ':' {
		p = p[1:]
	}

	return filepath.FromSlash(p), nil
}
