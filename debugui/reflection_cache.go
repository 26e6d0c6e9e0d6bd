package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name     string
	Type     reflect.Type
	Index    int
	IsStruct bool
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

// GetFields returns the exported fields of struct type t.
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
			fields = append(fields, FieldInfo{
				Name:     field.Name,
				Type:     field.Type,
				Index:    i,
				IsStruct: field.Type.Kind() == reflect.Struct,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// FieldLine is one "name: value" row of a flattened struct.
type FieldLine struct {
	Name  string
	Value string
}

// Describe flattens the exported fields of a struct (or pointer to one) into
// display rows. Nested structs are prefixed with their field name unless they
// implement fmt.Stringer.
func Describe(v any) []FieldLine {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []FieldLine{{Name: "value", Value: fmt.Sprint(v)}}
	}
	return describe("", val)
}

func describe(prefix string, val reflect.Value) []FieldLine {
	var lines []FieldLine
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fv := val.Field(field.Index)
		name := prefix + field.Name
		if field.IsStruct {
			if _, ok := fv.Interface().(fmt.Stringer); !ok {
				lines = append(lines, describe(name+".", fv)...)
				continue
			}
		}
		lines = append(lines, FieldLine{Name: name, Value: fmt.Sprint(fv.Interface())})
	}
	return lines
}
