package orchestrator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/meta-info/model"
	"github.com/thirukguru/meta-info/service/metadata"
	"github.com/thirukguru/meta-info/service/output"
)

type mockMetadata struct {
	m     model.BuildMetadata
	calls int
}

func (m *mockMetadata) Resolve() model.BuildMetadata {
	m.calls++
	return m.m
}

type mockOutput struct {
	rendered []model.BuildMetadata
	err      error
}

func (m *mockOutput) RenderMetadata(md model.BuildMetadata) error {
	m.rendered = append(m.rendered, md)
	return m.err
}

func TestOrchestrateRendersResolvedMetadata(t *testing.T) {
	md := model.BuildMetadata{Name: "demo", Version: "1.0.0"}
	meta := &mockMetadata{m: md}
	out := &mockOutput{}

	err := NewService(meta, out).Orchestrate()

	require.NoError(t, err)
	assert.Equal(t, 1, meta.calls)
	assert.Equal(t, []model.BuildMetadata{md}, out.rendered)
}

func TestOrchestrateWrapsRenderError(t *testing.T) {
	renderErr := errors.New("broken pipe")
	out := &mockOutput{err: renderErr}

	err := NewService(&mockMetadata{}, out).Orchestrate()

	require.Error(t, err)
	assert.ErrorIs(t, err, renderErr)
	assert.Contains(t, err.Error(), "failed to render build metadata")
}

func TestOrchestrateEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	meta := metadata.NewService(model.BuildMetadata{
		Name:        "demo",
		Description: "a demo app",
		Version:     "1.0.0",
		Revision:    "abc123",
		BuildType:   "release",
		Compiler:    "toolchain-X",
	})

	require.NoError(t, NewService(meta, output.NewService(&buf)).Orchestrate())

	assert.Equal(t, "> Name: demo\n"+
		"> Description: a demo app\n"+
		"> Version: 1.0.0\n"+
		"> Revision: abc123\n"+
		"> Build type: release\n"+
		"> Compiler: toolchain-X\n", buf.String())
}
