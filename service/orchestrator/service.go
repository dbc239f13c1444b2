// Package orchestrator coordinates resolving and reporting build metadata.
package orchestrator

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/thirukguru/meta-info/service/metadata"
	"github.com/thirukguru/meta-info/service/output"
)

// NewService creates a new orchestrator service.
func NewService(metadataService metadata.Service, outputService output.Service) Service {
	return &service{
		metadataService: metadataService,
		outputService:   outputService,
	}
}

func (s *service) Orchestrate() error {
	return s.reportWorkflow()
}

func (s *service) reportWorkflow() error {
	m := s.metadataService.Resolve()

	log.Debug().
		Str("name", m.Name).
		Str("version", m.Version).
		Str("revision", m.Revision).
		Str("buildType", m.BuildType).
		Str("compiler", m.Compiler).
		Msg("Resolved build metadata")

	if err := s.outputService.RenderMetadata(m); err != nil {
		return fmt.Errorf("failed to render build metadata: %w", err)
	}
	return nil
}
