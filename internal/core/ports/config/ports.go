package configports

import (
	configdomain "tram.dev/cli/internal/core/domain/config"
)

// Resolver produces fully-resolved configuration records from defaults,
// files, and environment variables. CLI overrides are not a resolver
// concern: callers apply them as a final layer on top of any result.
type Resolver interface {
	// LoadDefaultsAndEnvironment resolves from the default and environment
	// layers only, without touching the filesystem.
	LoadDefaultsAndEnvironment() (configdomain.Resolution, error)

	// LoadFromFile resolves defaults, the given file, and the environment.
	// The path must exist and carry a recognized extension.
	LoadFromFile(path string) (configdomain.Resolution, error)

	// LoadFromCandidatePaths probes the candidate paths in order and
	// resolves against the first file that exists. An existing candidate
	// that fails to decode is a hard failure, not a fall-through. With no
	// existing candidate it behaves like LoadDefaultsAndEnvironment.
	// Passing explicit paths replaces the default candidate list.
	LoadFromCandidatePaths(custom ...string) (configdomain.Resolution, error)
}

// ChangeHandler receives hot-reload outcomes. Implementations must not
// assume they run on any particular goroutine; the watcher invokes them
// from its background reload loop.
type ChangeHandler interface {
	// OnReloadSuccess is called with the new record after the shared
	// snapshot has been swapped.
	OnReloadSuccess(rec configdomain.Record)

	// OnReloadFailure is called when a reload fails. The previous record
	// remains current.
	OnReloadFailure(err error)
}
