package types

import (
	"reflect"
	"strings"
)

func GetFieldInterfaceByPath(instance interface{}, fieldPath string) (interface{}, bool) {
	valueOfIns := reflect.ValueOf(instance)
	fieldNames := strings.Split(fieldPath, ".")
	for _, name := range fieldNames {
		v := reflect.Indirect(valueOfIns)
		if v.Type().Kind() != reflect.Struct {
			return nil, false
		}
		v = v.FieldByName(name)
		if v.IsValid() {
			valueOfIns = v
		} else {
			return nil, false
		}
	}
	return valueOfIns.Interface(), true
}

func FieldPath2Index(instance interface{}, fieldPath string) (interface{}, []int, bool) {
	valueOfIns := reflect.ValueOf(instance)
	fieldNames := strings.Split(fieldPath, ".")
	indices := make([]int, 0, 4)
	for _, name := range fieldNames {
		v := reflect.Indirect(valueOfIns)
		if v.Type().Kind() != reflect.Struct {
			return nil, nil, false
		}

		if field, ok := v.Type().FieldByName(name); ok {
			indices = append(indices, field.Index[0])
			v = v.FieldByName(name)
			valueOfIns = v
		} else {
			return nil, nil, false
		}
	}
	return valueOfIns.Interface(), indices, true
}

// FieldComparator orders struct (or struct pointer) elements by the field
// at a dotted path, e.g. "SelfInfo.Age", using the field's natural order.
// The path is resolved once and cached as field indices. Panics when the
// path does not exist on an element.
func FieldComparator(fieldPath string) Comparator {
	var indices []int
	var cmp Comparator
	fieldOf := func(e interface{}) interface{} {
		if indices != nil {
			return reflect.Indirect(reflect.ValueOf(e)).FieldByIndex(indices).Interface()
		}
		t, idx, ok := FieldPath2Index(e, fieldPath)
		if !ok {
			panic("Field path is INCORRECT.")
		}
		indices = idx
		return t
	}
	return func(e1, e2 interface{}) int {
		f1, f2 := fieldOf(e1), fieldOf(e2)
		if cmp == nil {
			cmp = Natural(f1)
		}
		return cmp(f1, f2)
	}
}
