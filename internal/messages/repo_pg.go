package messages

import (
	"context"
	"database/sql"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// UpdateAnalysis merges the patch into one guest message row. Nil patch
// fields keep the stored value via COALESCE; the analyzed marker and
// timestamp are always stamped.
func (r *PGRepo) UpdateAnalysis(ctx context.Context, messageID string, patch AnalysisPatch, analyzedAt time.Time) (int64, error) {
	const query = `
UPDATE guest_messages SET
    sentiment       = COALESCE($2, sentiment),
    urgency         = COALESCE($3, urgency),
    department      = COALESCE($4, department),
    subcategory     = COALESCE($5, subcategory),
    translated_text = COALESCE($6, translated_text),
    is_translated   = COALESCE($7, is_translated),
    analyzed        = TRUE,
    analyzed_at     = $8
WHERE id = $1`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		messageID,
		nullString(patch.Sentiment),
		nullString(patch.Urgency),
		nullString(patch.Department),
		nullString(patch.Subcategory),
		nullString(patch.TranslatedText),
		nullBool(patch.IsTranslated),
		analyzedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullString(val *string) sql.NullString {
	if val == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *val, Valid: true}
}

func nullBool(val *bool) sql.NullBool {
	if val == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *val, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
