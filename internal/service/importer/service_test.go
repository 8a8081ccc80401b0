package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAgentRepo struct {
	agent.AgentRepository
	byName  map[string]agent.Agent // lowercased name -> agent
	lookups int
}

func (s *stubAgentRepo) GetByName(ctx context.Context, name string) (agent.Agent, error) {
	s.lookups++
	a, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return agent.Agent{}, agent.ErrAgentNotFound
	}
	return a, nil
}

func TestResolveSales_NameResolution(t *testing.T) {
	repo := &stubAgentRepo{byName: map[string]agent.Agent{
		"ali khan":  {CNIC: "35202-1111111-1", Name: "Ali Khan", Status: agent.StatusActive},
		"sara butt": {CNIC: "35202-2222222-2", Name: "Sara Butt", Status: agent.StatusLeft},
	}}
	svc := &ImportServiceImpl{agentRepo: repo}
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local)

	payloads := []SaleRow{
		{AgentName: "Ali Khan", CustomerName: "C1", CycleLabel: "Jan 2026"},
		{AgentName: "ALI KHAN", CustomerName: "C2", CycleLabel: "Jan 2026"}, // same agent, different casing
		{AgentName: "Sara Butt", CustomerName: "C3", CycleLabel: "Jan 2026"},
		{AgentName: "Nobody", CustomerName: "C4", CycleLabel: "Jan 2026"},
	}

	sales, err := svc.resolveSales(context.Background(), payloads, now)
	require.NoError(t, err)

	// Departed and unknown agents drop silently; known names key by CNIC.
	require.Len(t, sales, 2)
	assert.Equal(t, "35202-1111111-1", sales[0].AgentCNIC)
	assert.Equal(t, "35202-1111111-1", sales[1].AgentCNIC)
	assert.Equal(t, "C1", sales[0].CustomerName)
	assert.Equal(t, now, sales[0].Date)
	assert.Equal(t, "Jan 2026", sales[0].CycleLabel)
}

func TestResolveSales_LooksUpEachNameOnce(t *testing.T) {
	repo := &stubAgentRepo{byName: map[string]agent.Agent{
		"ali khan": {CNIC: "1", Name: "Ali Khan", Status: agent.StatusActive},
	}}
	svc := &ImportServiceImpl{agentRepo: repo}

	payloads := []SaleRow{
		{AgentName: "Ali Khan"},
		{AgentName: "ali khan"},
		{AgentName: "Nobody"},
		{AgentName: "Nobody"},
	}

	_, err := svc.resolveSales(context.Background(), payloads, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lookups, "misses memoize like hits")
}
