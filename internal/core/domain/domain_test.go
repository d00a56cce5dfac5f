package domain_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depfix/internal/core/domain"
)

func TestTargetDirs(t *testing.T) {
	assert.Equal(t, []string{".", "frontend", "backend", "shared"}, domain.TargetDirs())
}

func TestPaths(t *testing.T) {
	root := filepath.Join("tmp", "project")

	assert.Equal(t, filepath.Join(root, "frontend", "package.json"), domain.ManifestPath(root))
	assert.Equal(t, filepath.Join(root, "depfix.yaml"), domain.ConfigPath(root))
	assert.Equal(t, []string{
		filepath.Join(root, ".npmrc"),
		filepath.Join(root, "frontend", ".npmrc"),
	}, domain.NpmrcPaths(root))
}

func TestNpmrcContent(t *testing.T) {
	lines := strings.Split(domain.NpmrcContent, "\n")
	assert.Equal(t, []string{
		"legacy-peer-deps=true",
		"auto-install-peers=true",
		"fund=false",
		"audit=false",
	}, lines)
}

func TestManifestPins(t *testing.T) {
	pins := domain.ManifestPins()

	got := make(map[string]string, len(pins))
	for _, p := range pins {
		got[p.Field+"/"+p.Package] = p.Version
	}

	assert.Equal(t, map[string]string{
		"dependencies/react":           "18.3.1",
		"dependencies/react-dom":       "18.3.1",
		"resolutions/react":            "18.3.1",
		"resolutions/react-dom":        "18.3.1",
		"resolutions/@types/react":     "^18.2.45",
		"resolutions/@types/react-dom": "^18.2.18",
		"overrides/react":              "18.3.1",
		"overrides/react-dom":          "18.3.1",
	}, got)
}

func TestParseCleanupPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.CleanupPolicy
		wantErr bool
	}{
		{in: "", want: domain.CleanupWarn},
		{in: "warn", want: domain.CleanupWarn},
		{in: "fail", want: domain.CleanupFail},
		{in: "ignore", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseCleanupPolicy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid cleanup policy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstallPlan(t *testing.T) {
	plan := domain.InstallPlan("")
	require.Len(t, plan, 6)

	type row struct {
		cmd   string
		dir   string
		fatal bool
		stage int
	}
	want := []row{
		{"npm install --legacy-peer-deps", ".", true, 0},
		{"npm install --legacy-peer-deps", "shared", false, 1},
		{"npm run build", "shared", false, 1},
		{"npm install --legacy-peer-deps", "backend", false, 2},
		{"npm install react@18.3.1 react-dom@18.3.1 --save --legacy-peer-deps", "frontend", false, 2},
		{"npm install --legacy-peer-deps", "frontend", true, 2},
	}

	for i, inv := range plan {
		assert.Equal(t, want[i].cmd, inv.CommandLine(), "step %d", i+1)
		assert.Equal(t, want[i].dir, inv.Dir, "step %d", i+1)
		assert.Equal(t, want[i].fatal, inv.Fatal, "step %d", i+1)
		assert.Equal(t, want[i].stage, inv.Stage, "step %d", i+1)
		assert.Equal(t, map[string]string{"npm_config_legacy_peer_deps": "true"}, inv.Env, "step %d", i+1)
		assert.NotEmpty(t, inv.FailureMessage)
	}

	assert.Equal(t, domain.SeverityError, plan[4].Severity)
	assert.Equal(t, domain.SeverityWarning, plan[2].Severity)
}

func TestInstallPlan_CustomPackageManager(t *testing.T) {
	plan := domain.InstallPlan("pnpm")
	for _, inv := range plan {
		assert.Equal(t, "pnpm", inv.Command[0])
	}
}

func TestInstallPlan_CommandsDoNotShareStorage(t *testing.T) {
	plan := domain.InstallPlan("npm")
	plan[0].Command[0] = "changed"
	assert.Equal(t, "npm", plan[1].Command[0])
}
