package agent

import "errors"

var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrCNICExists       = errors.New("agent with this CNIC already exists")
	ErrAgentAlreadyLeft = errors.New("agent is already marked as left")
	ErrAgentStillActive = errors.New("agent is still active")
)
