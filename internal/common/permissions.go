package common

// File permission constants for consistent handling of repository state
const (
	// FilePermissionSecure is used for repository state and config files
	FilePermissionSecure = 0600

	// DirPermissionSecure is used for the repository marker and config directories
	DirPermissionSecure = 0700
)
