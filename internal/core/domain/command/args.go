package command

import (
	"solaire/internal/core/domain"
	"time"
)

// Args maps argument names to their coerced values. Optional args that received no token are absent.
type Args map[string]any

func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

func (a Args) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

func (a Args) Int(name string) (int, bool) {
	v, ok := a[name].(int)
	return v, ok
}

func (a Args) Float(name string) (float64, bool) {
	v, ok := a[name].(float64)
	return v, ok
}

func (a Args) Time(name string) (time.Time, bool) {
	v, ok := a[name].(time.Time)
	return v, ok
}

func (a Args) Member(name string) (*domain.Member, bool) {
	v, ok := a[name].(*domain.Member)
	return v, ok
}
