// Package build carries version metadata injected at build time via
// -ldflags "-X github.com/gemcontent/contentgem-client/internal/build.Version=...".
package build

var Version = "dev"
