// internal/version/version.go
package version

// Version is the gapscan release version.
const Version = "0.4.0"
