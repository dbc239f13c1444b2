package orchestrator

import (
	"github.com/thirukguru/meta-info/service/metadata"
	"github.com/thirukguru/meta-info/service/output"
)

type service struct {
	metadataService metadata.Service
	outputService   output.Service
}

// Service is the interface for the report workflow.
type Service interface {
	Orchestrate() error
}
