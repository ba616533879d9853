package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/ports"
)

const (
	manifestPath       = "META-INF/MANIFEST.MF"
	symbolicNameHeader = "Bundle-SymbolicName"
	maxManifestBytes   = 1 << 20
)

// ManifestInspector reads bundle identity from the manifest packaged inside a
// JAR archive.
type ManifestInspector struct{}

var _ ports.ArchiveInspector = ManifestInspector{}

func (ManifestInspector) SymbolicName(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", &domain.IdentityError{Path: path, Err: fmt.Errorf("open archive: %w", err)}
	}
	defer func() { _ = reader.Close() }()

	name, err := symbolicName(&reader.Reader)
	if err != nil {
		return "", &domain.IdentityError{Path: path, Err: err}
	}
	return name, nil
}

func (ManifestInspector) Read(path string) (domain.Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Archive{}, fmt.Errorf("read archive %s: %w", path, err)
	}
	return domain.Archive{Name: filepath.Base(path), Data: data}, nil
}

// SymbolicNameFromBytes extracts the symbolic name from an archive held in
// memory.
func SymbolicNameFromBytes(data []byte) (string, error) {
	manifest, err := ManifestFromBytes(data)
	if err != nil {
		return "", err
	}
	return symbolicNameOf(manifest)
}

// ManifestFromBytes returns the main manifest attributes of an archive held in
// memory.
func ManifestFromBytes(data []byte) (Manifest, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	return readManifest(reader)
}

func symbolicName(reader *zip.Reader) (string, error) {
	manifest, err := readManifest(reader)
	if err != nil {
		return "", err
	}
	return symbolicNameOf(manifest)
}

func symbolicNameOf(manifest Manifest) (string, error) {
	name := domain.NormalizeSymbolicName(manifest.Get(symbolicNameHeader))
	if name == "" {
		return "", fmt.Errorf("manifest has no %s header", symbolicNameHeader)
	}
	return name, nil
}

func readManifest(reader *zip.Reader) (Manifest, error) {
	var entry *zip.File
	for _, file := range reader.File {
		if strings.EqualFold(file.Name, manifestPath) {
			entry = file
			break
		}
	}
	if entry == nil {
		return nil, errors.New("archive has no " + manifestPath)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = rc.Close() }()

	return ParseManifest(io.LimitReader(rc, maxManifestBytes))
}
