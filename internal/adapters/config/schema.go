package config

// File represents the structure of the depfix.yaml configuration file.
type File struct {
	PackageManager string `yaml:"packageManager"`
	CleanupPolicy  string `yaml:"cleanupPolicy"`
	Parallel       *bool  `yaml:"parallel"`
}
