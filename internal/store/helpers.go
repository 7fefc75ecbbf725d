package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ibam-edu/actioncoach/internal/models"
)

// marshalValue marshals v to a JSON string for a NOT NULL column.
func marshalValue(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal for storage failed: %w", err)
	}
	return string(b), nil
}

// marshalNullable marshals v to JSON for a nullable column, returning nil
// for nil pointers and empty maps so the column stays NULL.
func marshalNullable(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case *models.SessionContent:
		if val == nil {
			return nil, nil
		}
	case map[string]bool:
		if len(val) == 0 {
			return nil, nil
		}
	}
	return marshalValue(v)
}

// unmarshalValue decodes a JSON string from a NOT NULL column.
func unmarshalValue(s string, dst interface{}) error {
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		return fmt.Errorf("unmarshal from storage failed: %w", err)
	}
	return nil
}

// unmarshalNullable decodes a JSON string from a nullable column, leaving
// dst untouched when the column was NULL.
func unmarshalNullable(s string, dst interface{}) error {
	if s == "" {
		return nil
	}
	return unmarshalValue(s, dst)
}

// scanActionRecord scans an ActionRecord row, decoding the JSON score
// column. Column order matches the ListActionRecords queries.
func scanActionRecord(rows *sql.Rows) (models.ActionRecord, error) {
	var rec models.ActionRecord
	var scoreJSON string
	err := rows.Scan(&rec.ID, &rec.UserID, &rec.SessionNumber, &rec.ActionText,
		&scoreJSON, &rec.Completed, &rec.CreatedAt)
	if err != nil {
		return rec, fmt.Errorf("scan action record failed: %w", err)
	}
	if err := unmarshalValue(scoreJSON, &rec.Score); err != nil {
		return rec, err
	}
	return rec, nil
}
