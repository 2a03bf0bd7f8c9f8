package ports

import "context"

type AnalyticsCache interface {
	InvalidateCreator(ctx context.Context, creatorID string) error
}
