package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type agentRepository struct {
	db *database.DB
}

const agentColumns = `cnic, name, team, center, base_salary, status, activated_at, left_at, password, created_at, updated_at`

func scanAgent(row pgx.Row) (agent.Agent, error) {
	var a agent.Agent
	err := row.Scan(
		&a.CNIC, &a.Name, &a.Team, &a.Center, &a.BaseSalary,
		&a.Status, &a.ActivatedAt, &a.LeftAt, &a.Password,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements agent.AgentRepository.
func (r *agentRepository) Create(ctx context.Context, a agent.Agent) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agents (cnic, name, team, center, base_salary, status, activated_at, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.CNIC, a.Name, a.Team, a.Center, a.BaseSalary, a.Status, a.ActivatedAt, a.Password,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return agent.Agent{}, agent.ErrCNICExists
		}
		return agent.Agent{}, fmt.Errorf("failed to create agent: %w", err)
	}

	return a, nil
}

// CreateBatch implements agent.AgentRepository. Caller wraps this in a
// transaction; a duplicate CNIC fails the whole batch.
func (r *agentRepository) CreateBatch(ctx context.Context, agents []agent.Agent) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agents (cnic, name, team, center, base_salary, status, activated_at, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, a := range agents {
		_, err := q.Exec(ctx, query,
			a.CNIC, a.Name, a.Team, a.Center, a.BaseSalary, a.Status, a.ActivatedAt, a.Password,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return 0, agent.ErrCNICExists
			}
			return 0, fmt.Errorf("failed to create agent %s: %w", a.CNIC, err)
		}
	}

	return len(agents), nil
}

// GetByCNIC implements agent.AgentRepository.
func (r *agentRepository) GetByCNIC(ctx context.Context, cnic string) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + agentColumns + ` FROM agents WHERE cnic = $1`

	a, err := scanAgent(q.QueryRow(ctx, query, cnic))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return agent.Agent{}, agent.ErrAgentNotFound
		}
		return agent.Agent{}, fmt.Errorf("failed to get agent by cnic: %w", err)
	}

	return a, nil
}

// GetByName implements agent.AgentRepository. Name matching is
// case-insensitive; when several agents share a name the oldest roster
// entry wins.
func (r *agentRepository) GetByName(ctx context.Context, name string) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + agentColumns + `
		FROM agents
		WHERE LOWER(name) = LOWER($1)
		ORDER BY created_at ASC
		LIMIT 1
	`

	a, err := scanAgent(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return agent.Agent{}, agent.ErrAgentNotFound
		}
		return agent.Agent{}, fmt.Errorf("failed to get agent by name: %w", err)
	}

	return a, nil
}

// List implements agent.AgentRepository.
func (r *agentRepository) List(ctx context.Context, filter agent.AgentFilter) ([]agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Team != nil && *filter.Team != "" {
		conditions = append(conditions, fmt.Sprintf("team = $%d", argIdx))
		args = append(args, *filter.Team)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR cnic ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	query := `
		SELECT ` + agentColumns + `
		FROM agents
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var agents []agent.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}

	return agents, rows.Err()
}

// ListActive implements agent.AgentRepository.
func (r *agentRepository) ListActive(ctx context.Context) ([]agent.Agent, error) {
	status := agent.StatusActive
	return r.List(ctx, agent.AgentFilter{Status: &status})
}

// Update implements agent.AgentRepository.
func (r *agentRepository) Update(ctx context.Context, req agent.UpdateAgentRequest) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Team != nil {
		sets = append(sets, fmt.Sprintf("team = $%d", argIdx))
		args = append(args, *req.Team)
		argIdx++
	}
	if req.Center != nil {
		sets = append(sets, fmt.Sprintf("center = $%d", argIdx))
		args = append(args, *req.Center)
		argIdx++
	}
	if req.BaseSalary != nil {
		sets = append(sets, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.Password != nil {
		sets = append(sets, fmt.Sprintf("password = $%d", argIdx))
		args = append(args, *req.Password)
		argIdx++
	}

	args = append(args, req.CNIC)
	query := fmt.Sprintf(`
		UPDATE agents
		SET %s
		WHERE cnic = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argIdx, agentColumns)

	a, err := scanAgent(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return agent.Agent{}, agent.ErrAgentNotFound
		}
		return agent.Agent{}, fmt.Errorf("failed to update agent: %w", err)
	}

	return a, nil
}

// SetStatus implements agent.AgentRepository. Marking an agent Left stamps
// left_at; reactivating clears it.
func (r *agentRepository) SetStatus(ctx context.Context, cnic string, status agent.Status) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE agents
		SET status = $1,
		    left_at = CASE WHEN $1 = 'Left' THEN NOW() ELSE NULL END,
		    updated_at = NOW()
		WHERE cnic = $2
		RETURNING ` + agentColumns

	a, err := scanAgent(q.QueryRow(ctx, query, status, cnic))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return agent.Agent{}, agent.ErrAgentNotFound
		}
		return agent.Agent{}, fmt.Errorf("failed to set agent status: %w", err)
	}

	return a, nil
}

// Delete implements agent.AgentRepository.
func (r *agentRepository) Delete(ctx context.Context, cnic string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM agents WHERE cnic = $1`, cnic)
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return agent.ErrAgentNotFound
	}

	return nil
}

func NewAgentRepository(db *database.DB) agent.AgentRepository {
	return &agentRepository{db: db}
}
