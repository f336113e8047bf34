// Package postgres implements the store interfaces over PostgreSQL.
package postgres

import (
	"database/sql"

	apperrors "sabi-consults/internal/common/errors"
)

// rowScanner is the subset shared by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// requireRow turns a zero-rows-affected result into a NotFound error so
// an update or delete against a missing id never reads as success.
func requireRow(result sql.Result, entity, id, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStorageError(op, err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(entity, id)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
