package metadata

import (
	"runtime/debug"

	"github.com/thirukguru/meta-info/model"
)

// Unknown is reported for a revision or compiler that was neither injected
// nor derivable.
const Unknown = "unknown"

// revisionLength is the number of commit hash characters kept from VCS info.
const revisionLength = 12

// BuildInfoReader returns the build information embedded in the binary.
type BuildInfoReader func() (*debug.BuildInfo, bool)

// Option configures the metadata service.
type Option func(*service)

type service struct {
	injected      model.BuildMetadata
	readBuildInfo BuildInfoReader
	compiler      string
	goVersion     string
}

// Service is the interface for build metadata resolution.
type Service interface {
	Resolve() model.BuildMetadata
}
