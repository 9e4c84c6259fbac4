package version

// Version is the assetsym release, set at build time with
// -ldflags "-X github.com/assetsym/assetsym/version.Version=...".
var Version = "dev"
