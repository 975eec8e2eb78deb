package types

import (
	"fmt"
	"time"

	"github.com/emirpasic/gods/utils"
)

// Natural returns the default-order comparator for e's dynamic type.
// Panics when the type has no default order; such elements need an
// explicit Comparator.
func Natural(e interface{}) Comparator {
	switch e.(type) {
	case int:
		return Comparator(utils.IntComparator)
	case int8:
		return Comparator(utils.Int8Comparator)
	case int16:
		return Comparator(utils.Int16Comparator)
	case int32:
		return Comparator(utils.Int32Comparator)
	case int64:
		return Comparator(utils.Int64Comparator)
	case uint:
		return func(e1, e2 interface{}) int {
			a, b := e1.(uint), e2.(uint)
			switch {
			case a > b:
				return 1
			case a < b:
				return -1
			default:
				return 0
			}
		}
	case uint8:
		return Comparator(utils.UInt8Comparator)
	case uint16:
		return Comparator(utils.UInt16Comparator)
	case uint32:
		return Comparator(utils.UInt32Comparator)
	case uint64:
		return Comparator(utils.UInt64Comparator)
	case float32:
		return Comparator(utils.Float32Comparator)
	case float64:
		return Comparator(utils.Float64Comparator)
	case string:
		return Comparator(utils.StringComparator)
	case time.Time:
		return Comparator(utils.TimeComparator)
	default:
		panic(fmt.Sprintf("types: %T has no natural order", e))
	}
}
