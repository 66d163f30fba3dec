package messages

import (
	"context"
	"time"
)

// Repo defines the persistence operations the committer needs: a point patch
// of one stored guest message.
type Repo interface {
	UpdateAnalysis(ctx context.Context, messageID string, patch AnalysisPatch, analyzedAt time.Time) (int64, error)
}
