package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestReadFailed is returned when the frontend manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the frontend manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestMissingDependencies is returned when the manifest has no dependencies object.
	ErrManifestMissingDependencies = zerr.New("manifest has no dependencies object")

	// ErrManifestPatchFailed is returned when a pin cannot be applied to the manifest.
	ErrManifestPatchFailed = zerr.New("failed to patch manifest")

	// ErrManifestWriteFailed is returned when the patched manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrNpmrcWriteFailed is returned when an .npmrc file cannot be written.
	ErrNpmrcWriteFailed = zerr.New("failed to write .npmrc")

	// ErrCleanupFailed is returned when a cache directory or lockfile cannot be removed.
	ErrCleanupFailed = zerr.New("failed to clean dependency state")

	// ErrStepFailed is returned when an install step exits unsuccessfully.
	ErrStepFailed = zerr.New("step failed")

	// ErrRepairAborted is returned when a fatal step fails and the run stops.
	ErrRepairAborted = zerr.New("dependency repair aborted")

	// ErrEmptyCommand is returned when an invocation has no command.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCleanupPolicy is returned for a cleanup policy other than warn or fail.
	ErrInvalidCleanupPolicy = zerr.New("invalid cleanup policy, expected 'warn' or 'fail'")

	// ErrInvalidRoot is returned when the project root is not a directory.
	ErrInvalidRoot = zerr.New("project root is not a directory")
)
