package buildinfo

import (
	"errors"
	"time"

	"github.com/blang/semver"
)

var (
	buildDate = "<date>"
	version   = "<version>"
	commit    = "<commit>"
)

var (
	parsedVersion   semver.Version
	parsedBuildDate time.Time
)

func init() {
	loadMeta()
}

func loadMeta() {
	var err error

	parsedBuildDate, err = time.Parse(time.RFC3339, buildDate)
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) && IsDev() {
		parsedBuildDate = time.Now()
	} else if err != nil {
		panic(err)
	}
	parsedBuildDate = parsedBuildDate.UTC()

	if IsDev() {
		parsedVersion = semver.Version{
			Pre:   []semver.PRVersion{{VersionStr: "dev"}},
			Build: []string{commitOrLocal()},
		}
		return
	}

	parsedVersion = semver.MustParse(version)
}

func commitOrLocal() string {
	if commit == "<commit>" || commit == "" {
		return "local"
	}
	return commit
}

func Commit() string {
	return commit
}

func Version() semver.Version {
	return parsedVersion
}

func BuildDate() time.Time {
	return parsedBuildDate
}
