package log

import (
	"fmt"
	"time"
)

// Value converts a decoded variant value into a CBOR-friendly representation.
// Scalars, strings, byte slices, times and slices of those are kept as-is;
// anything else (extension objects, structured types) is formatted with %v.
func Value(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case bool, string, []byte, time.Time,
		int8, int16, int32, int64, int,
		uint8, uint16, uint32, uint64, uint,
		float32, float64:
		return x
	case []bool, []string, []int16, []int32, []int64,
		[]uint16, []uint32, []uint64, []float32, []float64:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
