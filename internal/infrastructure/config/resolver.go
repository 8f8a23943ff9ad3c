package configinfra

import (
	"os"
	"path/filepath"

	configdomain "tram.dev/cli/internal/core/domain/config"
	configports "tram.dev/cli/internal/core/ports/config"
)

// CandidatePaths returns the fixed search order for configuration
// files, relative to the working directory. The first existing file
// wins.
func CandidatePaths() []string {
	return []string{
		"tram.json",
		"tram.yaml",
		"tram.yml",
		"tram.toml",
		".tram.json",
		".tram.yaml",
		".tram.yml",
		".tram.toml",
	}
}

// Resolver loads configuration from defaults, candidate files, and the
// environment. Its operations are pure with respect to inputs: the same
// file content and environment always yield the same resolution.
type Resolver struct {
	// WorkDir anchors relative candidate paths. Empty means the process
	// working directory.
	WorkDir string
}

func NewResolver() *Resolver { return &Resolver{} }

var _ configports.Resolver = (*Resolver)(nil)

// LoadDefaultsAndEnvironment resolves from the default and environment
// layers only. Useful before any filesystem access is wanted.
func (r *Resolver) LoadDefaultsAndEnvironment() (configdomain.Resolution, error) {
	env, err := EnvLayer()
	if err != nil {
		return configdomain.Resolution{}, err
	}

	rec, prov := configdomain.Merge(env)
	return configdomain.Resolution{Record: rec, Provenance: prov}, nil
}

// LoadFromFile resolves defaults, the given file, and the environment.
// The path must exist and carry a recognized extension; a file that
// exists but cannot be read or decoded is a hard failure.
func (r *Resolver) LoadFromFile(path string) (configdomain.Resolution, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return configdomain.Resolution{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return configdomain.Resolution{}, &configdomain.IOError{Path: path, Err: err}
	}

	raw, err := Decode(data, format, path)
	if err != nil {
		return configdomain.Resolution{}, err
	}

	file, err := FileLayer(raw, path)
	if err != nil {
		return configdomain.Resolution{}, err
	}

	env, err := EnvLayer()
	if err != nil {
		return configdomain.Resolution{}, err
	}

	rec, prov := configdomain.Merge(file, env)
	return configdomain.Resolution{Record: rec, Provenance: prov, Path: path}, nil
}

// LoadFromCandidatePaths probes the candidate paths in order and loads
// the first file that exists. A candidate that exists but fails to
// decode aborts resolution rather than falling through, so a broken
// file is surfaced instead of masked. With no existing candidate the
// result is defaults plus environment. Explicit paths, when given,
// replace the default candidate list.
func (r *Resolver) LoadFromCandidatePaths(custom ...string) (configdomain.Resolution, error) {
	paths := custom
	if len(paths) == 0 {
		paths = CandidatePaths()
	}

	for _, path := range paths {
		full := path
		if r.WorkDir != "" && !filepath.IsAbs(path) {
			full = filepath.Join(r.WorkDir, path)
		}

		if _, err := os.Stat(full); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return configdomain.Resolution{}, &configdomain.IOError{Path: full, Err: err}
		}

		return r.LoadFromFile(full)
	}

	return r.LoadDefaultsAndEnvironment()
}

// WatchTargets returns the absolute paths a watcher should monitor:
// the explicit paths when given, otherwise the candidate list anchored
// at the resolver's working directory.
func (r *Resolver) WatchTargets(explicit []string) ([]string, error) {
	paths := explicit
	if len(paths) == 0 {
		paths = CandidatePaths()
	}

	targets := make([]string, 0, len(paths))
	for _, path := range paths {
		if r.WorkDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(r.WorkDir, path)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, &configdomain.WatchSetupError{Path: path, Err: err}
		}
		targets = append(targets, abs)
	}
	return targets, nil
}
