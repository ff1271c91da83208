// Package buildinfo reports the version and build metadata stamped into the
// binary at link time.
package buildinfo

import (
	"fmt"
	"runtime"
	"time"

	"github.com/blang/semver"
)

// Name is the name of the program as reported to the API and MCP clients.
const Name = "skyport-mcp"

const devEnvironment = "development"

// environment is stamped with -ldflags "-X" by release builds, which report
// it to Sentry.
var environment = devEnvironment

func Environment() string { return environment }

// IsDev reports whether the binary was built without a release environment.
func IsDev() bool { return environment == devEnvironment }

func IsRelease() bool { return environment != devEnvironment }

type info struct {
	Name         string
	Version      semver.Version
	Commit       string
	BuildDate    time.Time
	OS           string
	Architecture string
	Environment  string
}

func (i info) String() string {
	return fmt.Sprintf("%s v%s %s/%s Commit: %s BuildDate: %s",
		i.Name,
		i.Version,
		i.OS,
		i.Architecture,
		i.Commit,
		i.BuildDate.Format(time.RFC3339))
}

// Info returns the build metadata of the running binary.
func Info() info {
	return info{
		Name:         Name,
		Version:      Version(),
		Commit:       Commit(),
		BuildDate:    BuildDate(),
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		Environment:  Environment(),
	}
}

// UserAgent is sent with every API request.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", Name, Version())
}
