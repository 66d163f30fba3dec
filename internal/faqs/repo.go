package faqs

import "context"

// Repo defines read access to property FAQ pairs.
type Repo interface {
	ListActiveByProperty(ctx context.Context, propertyID string) ([]FAQ, error)
}
