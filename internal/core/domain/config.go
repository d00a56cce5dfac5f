package domain

// Config holds the tunable settings of a repair run.
type Config struct {
	// PackageManager is the binary invoked for install and build steps.
	PackageManager string
	// CleanupPolicy decides whether cleanup errors abort the run.
	CleanupPolicy CleanupPolicy
	// Parallel runs independent directories of a stage concurrently.
	Parallel bool
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		PackageManager: DefaultPackageManager,
		CleanupPolicy:  CleanupWarn,
		Parallel:       false,
	}
}
