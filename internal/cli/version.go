package cli

// Version is reported by --version and the help overlay. Release builds set
// it with -ldflags "-X github.com/fsmiamoto/binderclip/internal/cli.Version=v1.2.3".
var Version = "dev"
