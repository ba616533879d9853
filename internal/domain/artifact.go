package domain

import (
	"fmt"
	"strings"
)

// Coordinates identify a dependency artifact. Two coordinates match only when
// group, artifact and version are all equal.
type Coordinates struct {
	Group    string
	Artifact string
	Version  string
}

func (c Coordinates) Equal(other Coordinates) bool {
	return c.Group == other.Group && c.Artifact == other.Artifact && c.Version == other.Version
}

func (c Coordinates) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}

func (c Coordinates) Validate() error {
	if strings.TrimSpace(c.Group) == "" {
		return fmt.Errorf("group is required")
	}
	if strings.TrimSpace(c.Artifact) == "" {
		return fmt.Errorf("artifact is required")
	}
	if strings.TrimSpace(c.Version) == "" {
		return fmt.Errorf("version is required")
	}

	return nil
}

// ParseCoordinates parses "group:artifact:version".
func ParseCoordinates(raw string) (Coordinates, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 3 {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q: expected group:artifact:version", raw)
	}

	coords := Coordinates{
		Group:    strings.TrimSpace(parts[0]),
		Artifact: strings.TrimSpace(parts[1]),
		Version:  strings.TrimSpace(parts[2]),
	}
	if err := coords.Validate(); err != nil {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q: %w", raw, err)
	}

	return coords, nil
}

// ResolvedArtifact is a resolvable artifact. Path is empty until resolved.
type ResolvedArtifact struct {
	Coordinates Coordinates
	Path        string
}
