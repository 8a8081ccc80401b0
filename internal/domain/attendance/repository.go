package attendance

import "context"

type AttendanceRepository interface {
	// UpsertBatch writes one record per (agent, date); a re-import of the
	// same window replaces the previous rows rather than duplicating them.
	UpsertBatch(ctx context.Context, records []Record) (int, error)

	List(ctx context.Context, filter RecordFilter) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
