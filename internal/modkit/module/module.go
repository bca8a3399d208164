// Package module is the contract api modules satisfy and the helpers that
// pull typed ports back out of them
package module

import (
	"reflect"

	phttp "callerverify/internal/platform/net/http"
)

// Module mounts its routes and exposes a ports bundle for cross wiring
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any
}

// PortsOf finds a T in m's ports: the bundle itself or one of its exported struct fields
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for bootstrap code, it panics when m has no T
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module " + m.Name() + " has no " + reflect.TypeFor[T]().String() + " port")
	}
	return v
}
