package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var releaseVersion string

// Version reports the release recorded in VERSION, refined by build info when
// the binary carries it.
func Version() string {
	info, _ := debug.ReadBuildInfo()
	return versionFrom(strings.TrimSpace(releaseVersion), info)
}

// versionFrom prefers a tagged module version. Untagged builds report the
// release with a "dev" suffix and the short commit, if stamped.
func versionFrom(release string, info *debug.BuildInfo) string {
	if info == nil {
		return release
	}
	if tagged := info.Main.Version; tagged != "" && tagged != "(devel)" {
		return tagged
	}

	label := release + "-dev"
	if commit := buildSetting(info, "vcs.revision"); len(commit) >= 7 {
		label += "+" + commit[:7]
	}
	if buildSetting(info, "vcs.modified") == "true" {
		label += ".dirty"
	}
	return label
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}
