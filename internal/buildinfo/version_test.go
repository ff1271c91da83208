package buildinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func restoreMeta(t *testing.T) {
	t.Helper()

	prevEnv, prevVersion, prevDate, prevCommit := environment, version, buildDate, commit
	t.Cleanup(func() {
		environment, version, buildDate, commit = prevEnv, prevVersion, prevDate, prevCommit
		loadMeta()
	})
}

func TestProdMeta(t *testing.T) {
	restoreMeta(t)

	environment = "production"
	version = "1.2.3"
	buildDate = "2020-06-05T13:32:23Z"

	loadMeta()

	assert.Equal(t, "1.2.3", Version().String())
	assert.Equal(t, "2020-06-05T13:32:23Z", BuildDate().Format(time.RFC3339))
	assert.Equal(t, "skyport-mcp/1.2.3", UserAgent())
	assert.True(t, IsRelease())
}

func TestDevMeta(t *testing.T) {
	restoreMeta(t)

	environment = "development"
	version = "<version>"
	buildDate = "<date>"
	commit = "<commit>"

	loadMeta()

	assert.Equal(t, "0.0.0-dev+local", Version().String())
	assert.WithinDuration(t, time.Now(), BuildDate(), time.Minute)
	assert.True(t, IsDev())
}

func TestDevMetaCarriesCommit(t *testing.T) {
	restoreMeta(t)

	environment = "development"
	commit = "abc1234"

	loadMeta()

	assert.Equal(t, "0.0.0-dev+abc1234", Version().String())
	assert.Contains(t, Info().String(), "skyport-mcp v0.0.0-dev+abc1234")
}
