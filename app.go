// Package main is the entry point for the meta-info application.
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/thirukguru/meta-info/model"
	"github.com/thirukguru/meta-info/service/metadata"
	"github.com/thirukguru/meta-info/service/orchestrator"
	"github.com/thirukguru/meta-info/service/output"
	"github.com/thirukguru/meta-info/utils/logging"
)

// Build metadata, overridden at build time:
//
//	go build -ldflags="-X main.version=1.0.0 -X main.versionRevision=$(git rev-parse --short HEAD) -X main.buildType=release"
//
// Empty revision and compiler are derived from the Go toolchain; an empty
// revision becomes "unknown" when the binary carries no VCS stamp. Other
// values are printed exactly as set, empty included.
var (
	projectName        = "meta-info"
	projectDescription = "Prints build and version metadata of the binary"
	version            = "dev"
	versionRevision    = ""
	buildType          = "debug"
	compiler           = ""
)

func main() {
	logging.Init()

	// Arguments are never consulted and the exit status is always success.
	if err := run(os.Stdout); err != nil {
		log.Debug().Err(err).Msg("Build metadata not written")
	}
}

func run(stdout io.Writer) error {
	metadataService := metadata.NewService(model.BuildMetadata{
		Name:        projectName,
		Description: projectDescription,
		Version:     version,
		Revision:    versionRevision,
		BuildType:   buildType,
		Compiler:    compiler,
	})
	outputService := output.NewService(stdout)

	return orchestrator.NewService(metadataService, outputService).Orchestrate()
}
