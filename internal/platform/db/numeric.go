package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// NumericSign returns the sign of n. ok is false when n is null, NaN or
// infinite.
func NumericSign(n pgtype.Numeric) (sign int, ok bool) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return 0, false
	}
	return n.Int.Sign(), true
}

// NumericFloat converts n for consumers that cannot carry decimals, such as
// spreadsheet cells. Null and NaN yield nil.
func NumericFloat(n pgtype.Numeric) interface{} {
	f, err := n.Float64Value()
	if err != nil || !f.Valid || n.NaN {
		return nil
	}
	return f.Float64
}
