package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akmonengine/headpose/client"
	"github.com/akmonengine/headpose/debug"
	"github.com/akmonengine/headpose/pose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, pose.DefaultSettings(), cfg.Settings())
	assert.Equal(t, debug.NewPanel(), cfg.Panel())
	assert.Equal(t, ClientMock, cfg.Client.Kind)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
name: cockpit
tracking:
  rotation_multiplier: 0.02
  use_limits: true
  limits:
    yaw: {lower: -90, upper: 90}
    position_z: {lower: -0.1, upper: 0.2}
debug:
  visible: false
  data_rect: {x: 400, y: 10, width: 200, height: 100}
`))
	require.NoError(t, err)

	assert.Equal(t, "cockpit", cfg.Name)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")

	settings := cfg.Settings()
	assert.Equal(t, pose.DefaultPositionMultiplier, settings.PositionMultiplier)
	assert.Equal(t, 0.02, settings.RotationMultiplier)
	assert.True(t, settings.UseLimits)
	assert.Equal(t, pose.Limit{Lower: -90, Upper: 90}, settings.Limits.Yaw)
	assert.Equal(t, pose.Limit{Lower: -0.1, Upper: 0.2}, settings.Limits.PositionZ)
	assert.Equal(t, pose.Limit{}, settings.Limits.Roll)

	panel := cfg.Panel()
	assert.False(t, panel.Visible)
	assert.Equal(t, debug.Rect{X: 400, Y: 10, Width: 200, Height: 100}, panel.DataRect)
	assert.Equal(t, debug.NewPanel().StatusRect, panel.StatusRect)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "inverted limit",
			yaml: "tracking:\n  use_limits: true\n  limits:\n    pitch: {lower: 10, upper: -10}\n",
			err:  ErrInvalidLimit,
		},
		{
			name: "unknown client",
			yaml: "client:\n  kind: serial\n",
			err:  ErrUnknownClient,
		},
		{
			name: "replay without recording",
			yaml: "client:\n  kind: replay\n",
			err:  ErrMissingRecording,
		},
		{
			name: "infinite multiplier",
			yaml: "tracking:\n  position_multiplier: .inf\n",
			err:  ErrInvalidMultiplier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParse_InvertedLimitAllowedWhenDisabled(t *testing.T) {
	_, err := Parse(strings.NewReader("tracking:\n  limits:\n    pitch: {lower: 10, upper: -10}\n"))
	assert.NoError(t, err)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("tracking: [1, 2"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headpose.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\nlog_level: warn\n"), 0o600))

	t.Setenv("HEADPOSE_NAME", "from-env")
	t.Setenv("HEADPOSE_TRACKING_USE_LIMITS", "true")
	t.Setenv("HEADPOSE_DEBUG_VISIBLE", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Tracking.UseLimits)
	assert.False(t, cfg.Debug.Visible)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("HEADPOSE_CLIENT_KIND", ClientStatic)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ClientStatic, cfg.Client.Kind)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	t.Setenv("HEADPOSE_TRACKING_ROTATION_MULTIPLIER", "fast")
	_, err = Load("")
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	recording := filepath.Join(t.TempDir(), "rec.yaml")
	require.NoError(t, os.WriteFile(recording, []byte("samples:\n  - {yaw: 1}\n"), 0o600))

	tests := []struct {
		name string
		kind string
		want any
	}{
		{"mock", ClientMock, &client.Mock{}},
		{"static", ClientStatic, &client.Static{}},
		{"replay", ClientReplay, &client.Replay{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Client = Client{Kind: tt.kind, Recording: recording}

			c, err := cfg.NewClient()
			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}

	cfg := Default()
	cfg.Client.Kind = "serial"
	_, err := cfg.NewClient()
	assert.ErrorIs(t, err, ErrUnknownClient)
}
