package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
)

type AgentServiceImpl struct {
	agent.AgentRepository
	defaultPassword string
}

func NewAgentService(agentRepository agent.AgentRepository, defaultPassword string) agent.AgentService {
	return &AgentServiceImpl{
		AgentRepository: agentRepository,
		defaultPassword: defaultPassword,
	}
}

// CreateAgent implements agent.AgentService.
func (s *AgentServiceImpl) CreateAgent(ctx context.Context, req agent.CreateAgentRequest) (agent.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return agent.AgentResponse{}, err
	}

	password := req.Password
	if password == "" {
		password = s.defaultPassword
	}

	created, err := s.AgentRepository.Create(ctx, agent.Agent{
		CNIC:        req.CNIC,
		Name:        req.Name,
		Team:        req.Team,
		Center:      req.Center,
		BaseSalary:  req.BaseSalary,
		Status:      agent.StatusActive,
		ActivatedAt: time.Now(),
		Password:    password,
	})
	if err != nil {
		return agent.AgentResponse{}, err
	}

	return toResponse(created), nil
}

// GetAgent implements agent.AgentService.
func (s *AgentServiceImpl) GetAgent(ctx context.Context, cnic string) (agent.AgentResponse, error) {
	a, err := s.AgentRepository.GetByCNIC(ctx, cnic)
	if err != nil {
		return agent.AgentResponse{}, err
	}
	return toResponse(a), nil
}

// ListAgents implements agent.AgentService.
func (s *AgentServiceImpl) ListAgents(ctx context.Context, filter agent.AgentFilter) ([]agent.AgentResponse, error) {
	agents, err := s.AgentRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]agent.AgentResponse, 0, len(agents))
	for _, a := range agents {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}

// UpdateAgent implements agent.AgentService.
func (s *AgentServiceImpl) UpdateAgent(ctx context.Context, req agent.UpdateAgentRequest) (agent.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return agent.AgentResponse{}, err
	}

	updated, err := s.AgentRepository.Update(ctx, req)
	if err != nil {
		return agent.AgentResponse{}, err
	}
	return toResponse(updated), nil
}

// MarkLeft implements agent.AgentService. Historical sales, fines and
// bonuses keep referencing the agent; only payroll eligibility ends.
func (s *AgentServiceImpl) MarkLeft(ctx context.Context, cnic string) (agent.AgentResponse, error) {
	a, err := s.AgentRepository.GetByCNIC(ctx, cnic)
	if err != nil {
		return agent.AgentResponse{}, err
	}
	if a.Status == agent.StatusLeft {
		return agent.AgentResponse{}, agent.ErrAgentAlreadyLeft
	}

	updated, err := s.AgentRepository.SetStatus(ctx, cnic, agent.StatusLeft)
	if err != nil {
		return agent.AgentResponse{}, fmt.Errorf("failed to mark agent left: %w", err)
	}
	return toResponse(updated), nil
}

// Reactivate implements agent.AgentService.
func (s *AgentServiceImpl) Reactivate(ctx context.Context, cnic string) (agent.AgentResponse, error) {
	a, err := s.AgentRepository.GetByCNIC(ctx, cnic)
	if err != nil {
		return agent.AgentResponse{}, err
	}
	if a.Status == agent.StatusActive {
		return agent.AgentResponse{}, agent.ErrAgentStillActive
	}

	updated, err := s.AgentRepository.SetStatus(ctx, cnic, agent.StatusActive)
	if err != nil {
		return agent.AgentResponse{}, fmt.Errorf("failed to reactivate agent: %w", err)
	}
	return toResponse(updated), nil
}

// DeleteAgent implements agent.AgentService.
func (s *AgentServiceImpl) DeleteAgent(ctx context.Context, cnic string) error {
	return s.AgentRepository.Delete(ctx, cnic)
}

func toResponse(a agent.Agent) agent.AgentResponse {
	resp := agent.AgentResponse{
		CNIC:        a.CNIC,
		Name:        a.Name,
		Team:        a.Team,
		Center:      a.Center,
		BaseSalary:  a.BaseSalary,
		Status:      string(a.Status),
		ActivatedAt: a.ActivatedAt.Format("2006-01-02"),
	}
	if a.LeftAt != nil {
		leftAt := a.LeftAt.Format("2006-01-02")
		resp.LeftAt = &leftAt
	}
	return resp
}
