package recommend

import "context"

// HistoryRepo persists recommendation history rows.
type HistoryRepo interface {
	Save(ctx context.Context, record HistoryRecord) error
}
