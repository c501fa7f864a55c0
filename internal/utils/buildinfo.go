// Package utils provides helper functions, including version retrieval.
package utils

import (
	"runtime/debug"
)

const (
	unknownVersion     = "unknown"
	develVersion       = "(devel)"
	revisionSettingKey = "vcs.revision"
	modifiedSettingKey = "vcs.modified"
	shortRevisionSize  = 12
	dirtySuffix        = "-dirty"
)

// GetApplicationVersion reports the module version embedded by the Go toolchain.
// Development builds fall back to the VCS revision, then to "unknown".
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	return versionFromSettings(buildInfo.Settings)
}

func versionFromSettings(settings []debug.BuildSetting) string {
	revision := ""
	modified := false
	for _, setting := range settings {
		switch setting.Key {
		case revisionSettingKey:
			revision = setting.Value
		case modifiedSettingKey:
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return unknownVersion
	}
	if len(revision) > shortRevisionSize {
		revision = revision[:shortRevisionSize]
	}
	if modified {
		revision += dirtySuffix
	}
	return revision
}
