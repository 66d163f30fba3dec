package faqs

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ListActiveByProperty returns all active FAQ pairs for a property,
// oldest first so concatenated context reads in curation order.
func (r *PGRepo) ListActiveByProperty(ctx context.Context, propertyID string) ([]FAQ, error) {
	const query = `
SELECT id, property_id, question, answer, is_active, created_at
FROM property_faqs
WHERE property_id = $1 AND is_active = TRUE
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FAQ
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.ID, &f.PropertyID, &f.Question, &f.Answer, &f.Active, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
