package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// BuildJAR returns a minimal archive whose manifest declares symbolicName.
// An empty symbolicName produces a manifest without the header.
func BuildJAR(symbolicName string, version string) ([]byte, error) {
	var manifest bytes.Buffer
	manifest.WriteString("Manifest-Version: 1.0\r\n")
	if symbolicName != "" {
		manifest.WriteString(wrapHeader(symbolicNameHeader, symbolicName))
	}
	if version != "" {
		manifest.WriteString(wrapHeader("Bundle-Version", version))
	}
	manifest.WriteString("\r\n")

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	entry, err := writer.Create(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("create manifest entry: %w", err)
	}
	if _, err := entry.Write(manifest.Bytes()); err != nil {
		return nil, fmt.Errorf("write manifest entry: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteJAR writes BuildJAR output to dir/name and returns the path.
func WriteJAR(dir string, name string, symbolicName string, version string) (string, error) {
	data, err := BuildJAR(symbolicName, version)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	return path, nil
}

// wrapHeader splits a header at 72 bytes the way the JAR tooling does.
func wrapHeader(name string, value string) string {
	const width = 72

	line := name + ": " + value
	var out bytes.Buffer
	for len(line) > width {
		out.WriteString(line[:width])
		out.WriteString("\r\n ")
		line = line[width:]
	}
	out.WriteString(line)
	out.WriteString("\r\n")
	return out.String()
}
