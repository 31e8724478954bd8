package debugui

import (
	"fmt"
	"reflect"
	"sync"
	"time"
)

type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
	IsStruct  bool
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields lists the exported fields of struct type t.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  fieldType.Kind() == reflect.Struct,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

var (
	durationType = reflect.TypeOf(time.Duration(0))
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// FormatValue renders a leaf value for display. Durations and Stringers use
// their String method; nil pointers print as nil.
func FormatValue(val reflect.Value) string {
	if !val.IsValid() {
		return "<invalid>"
	}
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "nil"
		}
		return FormatValue(val.Elem())
	}
	if val.Type() == durationType {
		return time.Duration(val.Int()).String()
	}
	if val.Type().Implements(stringerType) && val.CanInterface() {
		return val.Interface().(fmt.Stringer).String()
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", val.Uint())
	case reflect.Bool:
		return fmt.Sprintf("%t", val.Bool())
	case reflect.String:
		return val.String()
	case reflect.Array, reflect.Slice:
		return fmt.Sprintf("[%d items]", val.Len())
	}

	if val.CanInterface() {
		return fmt.Sprintf("%v", val.Interface())
	}
	return fmt.Sprintf("<%s>", val.Type())
}
