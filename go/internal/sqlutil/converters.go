package sqlutil

import (
	"database/sql"
	"time"
)

// Optional provider fields are *int / *string in the domain models and
// sql.Null* in the generated query params.

func ToSqlInt32(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func FromSqlInt32(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func ToSqlString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func FromSqlStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func ToSqlTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func FromSqlTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}

// NonEmpty maps a blank provider string to NULL.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
