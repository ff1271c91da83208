package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no SKYPORT_ variables set.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	for _, key := range []string{
		"SKYPORT_API_TOKEN", "SKYPORT_TEAM_ID", "SKYPORT_API_BASE_URL", "SKYPORT_VM_BASE_URL",
		"SKYPORT_CONSOLIDATED_TOOLS", "SKYPORT_TRANSPORT", "SKYPORT_HTTP_ADDR",
		"SKYPORT_SENTRY_DSN", "SKYPORT_LOG_LEVEL", "LOG_LEVEL", "SKYPORT_CONFIG",
	} {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}

	return dir
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultVMBaseURL, cfg.VMBaseURL)
	assert.True(t, cfg.ConsolidatedTools)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Empty(t, cfg.APIToken)
	assert.Empty(t, cfg.TeamID)
	assert.Empty(t, cfg.File)
}

func TestEnvironment(t *testing.T) {
	isolate(t)

	t.Setenv("SKYPORT_API_TOKEN", "  tok  ")
	t.Setenv("SKYPORT_TEAM_ID", "team-1")
	t.Setenv("SKYPORT_API_BASE_URL", "http://localhost:9000")
	t.Setenv("SKYPORT_CONSOLIDATED_TOOLS", "false")
	t.Setenv("SKYPORT_TRANSPORT", "HTTP")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.APIToken)
	assert.Equal(t, "team-1", cfg.TeamID)
	assert.Equal(t, "http://localhost:9000", cfg.APIBaseURL)
	assert.False(t, cfg.ConsolidatedTools)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestPrefixedLogLevelWins(t *testing.T) {
	isolate(t)

	t.Setenv("SKYPORT_LOG_LEVEL", "warn")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	isolate(t)

	t.Setenv("SKYPORT_TEAM_ID", "from-env")
	t.Setenv("SKYPORT_CONSOLIDATED_TOOLS", "true")

	cfg, err := Load(newFlags(t, "--team", "from-flag", "--consolidated=false"))
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.TeamID)
	assert.False(t, cfg.ConsolidatedTools)
}

func TestUnchangedFlagsDoNotMaskEnvironment(t *testing.T) {
	isolate(t)

	t.Setenv("SKYPORT_VM_BASE_URL", "https://vm.example.com")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "https://vm.example.com", cfg.VMBaseURL)
}

func TestDotEnv(t *testing.T) {
	dir := isolate(t)

	content := "SKYPORT_API_TOKEN=from-dotenv\nSKYPORT_TEAM_ID=dotenv-team\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFileName), []byte(content), 0o600))

	// real environment wins over .env
	t.Setenv("SKYPORT_TEAM_ID", "env-team")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.APIToken)
	assert.Equal(t, "env-team", cfg.TeamID)
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "skyport.yml")
	content := "api_token: file-token\nteam_id: file-team\ntransport: http\nhttp_addr: 0.0.0.0:9999\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("SKYPORT_TEAM_ID", "env-team")

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.APIToken)
	assert.Equal(t, "env-team", cfg.TeamID)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "0.0.0.0:9999", cfg.HTTPAddr)
	assert.Equal(t, path, cfg.File)
}

func TestMissingConfigFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(newFlags(t, "--config", filepath.Join(dir, "nope.yml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		APIToken:   "tok",
		APIBaseURL: DefaultAPIBaseURL,
		VMBaseURL:  DefaultVMBaseURL,
		Transport:  TransportStdio,
		HTTPAddr:   DefaultHTTPAddr,
	}
	require.NoError(t, valid.Validate())

	missingToken := valid
	missingToken.APIToken = ""
	assert.ErrorIs(t, missingToken.Validate(), ErrMissingAPIToken)

	everythingWrong := Config{
		APIBaseURL: "ftp://files.example.com",
		VMBaseURL:  "https://",
		Transport:  "carrier-pigeon",
	}
	err := everythingWrong.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIToken)
	assert.Contains(t, err.Error(), "4 errors occurred")
	assert.Contains(t, err.Error(), `unknown transport "carrier-pigeon"`)

	noAddr := valid
	noAddr.Transport = TransportHTTP
	noAddr.HTTPAddr = ""
	assert.Error(t, noAddr.Validate())
}
