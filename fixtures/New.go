// Package fixtures provides random test data generation helpers.
package fixtures

import (
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/satori/go.uuid"
)

// New returns a pointer to T with all of its settable fields populated with random values.
// It is primarily meant for testing, when the concrete field values are irrelevant,
// but they must be present and distinguishable.
//
// A string field named ID or tagged with `ext:"ID"` receives a freshly made uuid,
// so the populated entities can serve as storage fixtures out of the box.
func New[T any]() *T {
	ptr := new(T)
	if elem := reflect.ValueOf(ptr).Elem(); elem.Kind() == reflect.Struct {
		populateStruct(elem)
	}
	return ptr
}

var mutex sync.Mutex

func populateStruct(elem reflect.Value) {
	st := elem.Type()
	for i := 0; i < elem.NumField(); i++ {
		fv := elem.Field(i)
		if !fv.CanSet() {
			continue
		}
		if fv.Kind() == reflect.String && isIDField(st.Field(i)) {
			fv.SetString(uuid.NewV4().String())
			continue
		}
		if value := newValue(fv); value.IsValid() {
			fv.Set(value)
		}
	}
}

func isIDField(field reflect.StructField) bool {
	if field.Name == `ID` {
		return true
	}
	tag, ok := field.Tag.Lookup(`ext`)
	return ok && (tag == `ID` || tag == `id`)
}

func newValue(value reflect.Value) reflect.Value {
	switch value.Type().Kind() {

	case reflect.Bool:
		mutex.Lock()
		defer mutex.Unlock()
		return reflect.ValueOf(randomdata.Boolean())

	case reflect.String:
		mutex.Lock()
		defer mutex.Unlock()
		return reflect.ValueOf(randomdata.SillyName())

	case reflect.Int:
		return reflect.ValueOf(rand.Int())

	case reflect.Int8:
		return reflect.ValueOf(int8(rand.Int()))

	case reflect.Int16:
		return reflect.ValueOf(int16(rand.Int()))

	case reflect.Int32:
		return reflect.ValueOf(rand.Int31())

	case reflect.Int64:
		switch value.Interface().(type) {
		case time.Duration:
			return reflect.ValueOf(time.Duration(rand.Int63()))
		default:
			return reflect.ValueOf(rand.Int63())
		}

	case reflect.Uint:
		return reflect.ValueOf(uint(rand.Uint32()))

	case reflect.Uint8:
		return reflect.ValueOf(uint8(rand.Uint32()))

	case reflect.Uint16:
		return reflect.ValueOf(uint16(rand.Uint64()))

	case reflect.Uint32:
		return reflect.ValueOf(rand.Uint32())

	case reflect.Uint64:
		return reflect.ValueOf(rand.Uint64())

	case reflect.Float32:
		return reflect.ValueOf(rand.Float32())

	case reflect.Float64:
		return reflect.ValueOf(rand.Float64())

	case reflect.Complex64:
		return reflect.ValueOf(complex64(42))

	case reflect.Complex128:
		return reflect.ValueOf(complex128(42.42))

	case reflect.Array:
		return reflect.New(value.Type()).Elem()

	case reflect.Slice:
		return reflect.MakeSlice(value.Type(), 0, 0)

	case reflect.Chan:
		return reflect.MakeChan(value.Type(), 0)

	case reflect.Map:
		return reflect.MakeMap(value.Type())

	case reflect.Ptr:
		return reflect.New(value.Type().Elem())

	case reflect.Uintptr:
		return reflect.ValueOf(uintptr(rand.Int()))

	case reflect.Struct:
		switch value.Interface().(type) {
		case time.Time:
			return reflect.ValueOf(time.Now().UTC().Add(time.Duration(rand.Int()) * time.Hour))
		default:
			nested := reflect.New(value.Type()).Elem()
			populateStruct(nested)
			return nested
		}

	default:
		// interfaces, funcs and unsafe pointers are left at their zero value
		return reflect.Value{}
	}
}
