package helper

import (
	"database/sql"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =======================
// STRING
// =======================

func StringPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func StringPtr(s string) *string {
	return &s
}

// RawStringToNull convierte "" en NULL
func RawStringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func NullStringValue(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// =======================
// UUID (Postgres Native)
// =======================

func StringToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// =======================
// DECIMAL (Postgres Numeric)
// =======================

// Para NUMERIC conviene pasar por string y no por float,
// así no se pierde precisión en el driver.
func Float64ToDecimalExact(f float64) decimal.Decimal {
	return decimal.RequireFromString(
		strconv.FormatFloat(f, 'f', -1, 64),
	)
}

func DecimalToFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// NumericStringToFloat64 convierte el string NUMERIC que devuelve lib/pq
func NumericStringToFloat64(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return DecimalToFloat64(d)
}
