// Package misc carries build time program identity.
package misc

// Set with -ldflags "-X themedstyler/misc.version=... -X themedstyler/misc.gitHash=...".
var (
	appName = "themedstyler"
	version = "0.4.2"
	gitHash = "local"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
