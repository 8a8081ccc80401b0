package attendance

import "context"

// AttendanceService defines attendance queries and the biometric import
type AttendanceService interface {
	// ImportRaw runs the full pipeline: parse raw machine rows, collapse
	// punches into one record per active agent per day, persist the batch.
	ImportRaw(ctx context.Context, req ImportRequest) (ImportResult, error)

	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
	Matrix(ctx context.Context, cycleLabel string) (MatrixResponse, error)
}
