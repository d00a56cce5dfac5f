package domain

import "strings"

// Severity controls how a non-fatal step failure is reported.
type Severity int

const (
	// SeverityWarning reports the failure as a warning.
	SeverityWarning Severity = iota
	// SeverityError reports the failure error-styled without aborting.
	SeverityError
)

// LegacyPeerDepsEnv is the environment variable relaxing peer-dependency strictness.
const LegacyPeerDepsEnv = "npm_config_legacy_peer_deps"

// DefaultPackageManager is the package manager binary used when none is configured.
const DefaultPackageManager = "npm"

// Section headers of the install plan.
const (
	SectionInstall  = "Installing dependencies"
	SectionShared   = "Building shared package"
	SectionBackend  = "Installing backend dependencies"
	SectionFrontend = "Installing frontend dependencies"
)

// Invocation is one external command of the install plan.
type Invocation struct {
	// Name identifies the step in logs and traces.
	Name string
	// Section is the header printed before the first step of a group.
	Section string
	// Command is the argv of the external tool.
	Command []string
	// Dir is the working directory relative to the project root.
	Dir string
	// Env holds variables set on top of the parent environment.
	Env map[string]string
	// Fatal aborts the run when the step fails.
	Fatal bool
	// Severity styles the failure message of a non-fatal step.
	Severity Severity
	// FailureMessage is logged when the step fails.
	FailureMessage string
	// Stage orders steps in parallel mode. Steps of one stage may run concurrently
	// when their directories differ.
	Stage int
}

// CommandLine returns the command as a single space separated string.
func (i Invocation) CommandLine() string {
	return strings.Join(i.Command, " ")
}

// InstallPlan returns the ordered install steps for the given package manager binary.
func InstallPlan(packageManager string) []Invocation {
	if packageManager == "" {
		packageManager = DefaultPackageManager
	}

	install := func() []string {
		return []string{packageManager, "install", "--legacy-peer-deps"}
	}
	env := func() map[string]string {
		return map[string]string{LegacyPeerDepsEnv: "true"}
	}

	return []Invocation{
		{
			Name:           "install-root",
			Section:        SectionInstall,
			Command:        install(),
			Dir:            RootDir,
			Env:            env(),
			Fatal:          true,
			FailureMessage: "Failed to install root dependencies",
			Stage:          0,
		},
		{
			Name:           "install-shared",
			Section:        SectionShared,
			Command:        install(),
			Dir:            SharedDir,
			Env:            env(),
			FailureMessage: "Warning: Failed to install shared dependencies",
			Stage:          1,
		},
		{
			Name:           "build-shared",
			Section:        SectionShared,
			Command:        []string{packageManager, "run", "build"},
			Dir:            SharedDir,
			Env:            env(),
			FailureMessage: "Warning: Failed to build shared package",
			Stage:          1,
		},
		{
			Name:           "install-backend",
			Section:        SectionBackend,
			Command:        install(),
			Dir:            BackendDir,
			Env:            env(),
			FailureMessage: "Warning: Failed to install backend dependencies",
			Stage:          2,
		},
		{
			Name:    "pin-react",
			Section: SectionFrontend,
			Command: []string{
				packageManager, "install",
				"react@" + ReactVersion, "react-dom@" + ReactVersion,
				"--save", "--legacy-peer-deps",
			},
			Dir:            FrontendDir,
			Env:            env(),
			Severity:       SeverityError,
			FailureMessage: "Failed to install React",
			Stage:          2,
		},
		{
			Name:           "install-frontend",
			Section:        SectionFrontend,
			Command:        install(),
			Dir:            FrontendDir,
			Env:            env(),
			Fatal:          true,
			FailureMessage: "Failed to install frontend dependencies",
			Stage:          2,
		},
	}
}
