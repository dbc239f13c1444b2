// Package metadata resolves the build metadata record reported by the binary.
package metadata

import (
	"runtime"
	"runtime/debug"

	"github.com/thirukguru/meta-info/model"
)

// NewService creates a new metadata service from the values injected at build time.
func NewService(injected model.BuildMetadata, opts ...Option) Service {
	s := &service{
		injected:      injected,
		readBuildInfo: debug.ReadBuildInfo,
		compiler:      runtime.Compiler,
		goVersion:     runtime.Version(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithBuildInfoReader overrides how embedded build information is read.
func WithBuildInfoReader(r BuildInfoReader) Option {
	return func(s *service) {
		s.readBuildInfo = r
	}
}

// WithToolchain overrides the compiler name and Go version used when no
// compiler was injected.
func WithToolchain(compiler, goVersion string) Option {
	return func(s *service) {
		s.compiler = compiler
		s.goVersion = goVersion
	}
}

// Resolve returns the build metadata with an empty revision or compiler
// filled in from the toolchain. Other fields are reported as injected.
func (s *service) Resolve() model.BuildMetadata {
	m := s.injected

	if m.Revision == "" {
		m.Revision = s.vcsRevision()
	}
	if m.Compiler == "" {
		m.Compiler = s.toolchain()
	}

	return m
}

func (s *service) toolchain() string {
	switch {
	case s.compiler == "" && s.goVersion == "":
		return Unknown
	case s.compiler == "":
		return s.goVersion
	case s.goVersion == "":
		return s.compiler
	}
	return s.compiler + " " + s.goVersion
}

// vcsRevision reads the commit stamped by the Go toolchain, marking
// builds from a modified working tree.
func (s *service) vcsRevision() string {
	if s.readBuildInfo == nil {
		return Unknown
	}
	info, ok := s.readBuildInfo()
	if !ok || info == nil {
		return Unknown
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return Unknown
	}
	if len(revision) > revisionLength {
		revision = revision[:revisionLength]
	}
	if modified {
		revision += "+dirty"
	}
	return revision
}
