package archive

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Manifest holds the main attributes of a JAR manifest. Keys are stored
// lower-cased; use Get for lookups.
type Manifest map[string]string

func (m Manifest) Get(name string) string {
	return m[strings.ToLower(name)]
}

// ParseManifest reads the main section of a manifest. Parsing stops at the
// first blank line, which separates the main section from per-entry sections.
// Lines starting with a single space continue the previous value.
func ParseManifest(r io.Reader) (Manifest, error) {
	manifest := Manifest{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxManifestBytes)

	lastKey := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}

		if strings.HasPrefix(line, " ") {
			if lastKey == "" {
				return nil, fmt.Errorf("manifest line %d: continuation without header", lineNo)
			}
			manifest[lastKey] += line[1:]
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("manifest line %d: malformed header", lineNo)
		}
		lastKey = strings.ToLower(strings.TrimSpace(name))
		manifest[lastKey] = strings.TrimPrefix(value, " ")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return manifest, nil
}
