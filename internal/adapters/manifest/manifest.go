// Package manifest loads deployment manifests: YAML files listing the bundles
// to push to a runtime and the dependency artifacts they need.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"gopkg.in/yaml.v3"
)

const DefaultFileName = "bundles.yaml"

type document struct {
	Target       string             `yaml:"target"`
	Policy       string             `yaml:"policy"`
	Strategy     string             `yaml:"strategy"`
	Bundles      []string           `yaml:"bundles"`
	Dependencies []string           `yaml:"dependencies"`
	Artifacts    []artifactDocument `yaml:"artifacts"`
}

type artifactDocument struct {
	Coordinates string `yaml:"coordinates"`
	Path        string `yaml:"path"`
}

// Plan is a validated manifest. Relative paths are resolved against the
// manifest's directory.
type Plan struct {
	Target       domain.TargetID
	Policy       domain.ActivationPolicy
	Strategy     domain.ReplaceStrategy
	Bundles      []string
	Dependencies []domain.Coordinates
	Artifacts    []domain.ResolvedArtifact
}

func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read manifest: %w", err)
	}

	plan, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return Plan{}, fmt.Errorf("load manifest %s: %w", path, err)
	}
	return plan, nil
}

func Parse(data []byte, baseDir string) (Plan, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("decode manifest: %w", err)
	}

	policy, err := domain.ParseActivationPolicy(strings.TrimSpace(doc.Policy))
	if err != nil {
		return Plan{}, err
	}
	strategy, err := domain.ParseReplaceStrategy(strings.TrimSpace(doc.Strategy))
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Target:   domain.TargetID(strings.TrimSpace(doc.Target)),
		Policy:   policy,
		Strategy: strategy,
	}

	for i, bundle := range doc.Bundles {
		bundle = strings.TrimSpace(bundle)
		if bundle == "" {
			return Plan{}, fmt.Errorf("bundles[%d]: path is required", i)
		}
		plan.Bundles = append(plan.Bundles, resolvePath(baseDir, bundle))
	}

	for i, raw := range doc.Dependencies {
		coords, err := domain.ParseCoordinates(raw)
		if err != nil {
			return Plan{}, fmt.Errorf("dependencies[%d]: %w", i, err)
		}
		plan.Dependencies = append(plan.Dependencies, coords)
	}

	for i, artifact := range doc.Artifacts {
		coords, err := domain.ParseCoordinates(artifact.Coordinates)
		if err != nil {
			return Plan{}, fmt.Errorf("artifacts[%d]: %w", i, err)
		}
		resolved := domain.ResolvedArtifact{Coordinates: coords}
		if path := strings.TrimSpace(artifact.Path); path != "" {
			resolved.Path = resolvePath(baseDir, path)
		}
		plan.Artifacts = append(plan.Artifacts, resolved)
	}

	if len(plan.Bundles) == 0 && len(plan.Dependencies) == 0 {
		return Plan{}, errors.New("manifest lists no bundles and no dependencies")
	}

	return plan, nil
}

func resolvePath(baseDir string, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
