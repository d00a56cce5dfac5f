package domain

import "path/filepath"

const (
	// RootDir is the invocation root of the project.
	RootDir = "."

	// FrontendDir is the frontend package directory.
	FrontendDir = "frontend"

	// BackendDir is the backend package directory.
	BackendDir = "backend"

	// SharedDir is the shared package directory.
	SharedDir = "shared"

	// CacheDirName is the name of the package manager's dependency cache directory.
	CacheDirName = "node_modules"

	// LockfileName is the name of the generated lockfile.
	LockfileName = "package-lock.json"

	// ManifestFileName is the name of the package manifest.
	ManifestFileName = "package.json"

	// NpmrcFileName is the name of the package manager configuration file.
	NpmrcFileName = ".npmrc"

	// ConfigFileName is the name of the optional depfix configuration file.
	ConfigFileName = "depfix.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// TargetDirs returns the directories whose caches and lockfiles are cleaned,
// in the order they are processed.
func TargetDirs() []string {
	return []string{RootDir, FrontendDir, BackendDir, SharedDir}
}

// ManifestPath returns the path of the frontend manifest below root.
func ManifestPath(root string) string {
	return filepath.Join(root, FrontendDir, ManifestFileName)
}

// NpmrcPaths returns the paths the package manager configuration is written to.
func NpmrcPaths(root string) []string {
	return []string{
		filepath.Join(root, NpmrcFileName),
		filepath.Join(root, FrontendDir, NpmrcFileName),
	}
}

// ConfigPath returns the path of the depfix configuration file below root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}
