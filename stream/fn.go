package stream

import (
	"reflect"

	"jsouthworth.net/go/dyn"
)

func genMapFunc(fn interface{}, sigErr error) func(interface{}) interface{} {
	switch f := fn.(type) {
	case func(value interface{}) interface{}:
		return f
	default:
		rv := reflect.ValueOf(fn)
		if rv.Kind() != reflect.Func {
			panic(sigErr)
		}
		rt := rv.Type()
		if rt.NumIn() != 1 || rt.NumOut() != 1 {
			panic(sigErr)
		}
		return func(v interface{}) interface{} {
			return dyn.Apply(fn, v)
		}
	}
}

func genPredFunc(fn interface{}, sigErr error) func(interface{}) bool {
	switch f := fn.(type) {
	case func(value interface{}) bool:
		return f
	default:
		rv := reflect.ValueOf(fn)
		if rv.Kind() != reflect.Func {
			panic(sigErr)
		}
		rt := rv.Type()
		if rt.NumIn() != 1 || rt.NumOut() != 1 ||
			rt.Out(0).Kind() != reflect.Bool {
			panic(sigErr)
		}
		return func(v interface{}) bool {
			return dyn.Apply(fn, v).(bool)
		}
	}
}

func genReduceFunc(fn interface{}) func(r, v interface{}) interface{} {
	switch f := fn.(type) {
	case func(res, val interface{}) interface{}:
		return f
	default:
		rv := reflect.ValueOf(fn)
		if rv.Kind() != reflect.Func {
			panic(errReduceSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 2 {
			panic(errReduceSig)
		}
		if rt.NumOut() != 1 {
			panic(errReduceSig)
		}
		return func(r, v interface{}) interface{} {
			return dyn.Apply(f, r, v)
		}
	}
}

func genCompareFunc(fn interface{}) func(a, b interface{}) int {
	switch f := fn.(type) {
	case func(a, b interface{}) int:
		return f
	default:
		rv := reflect.ValueOf(fn)
		if rv.Kind() != reflect.Func {
			panic(errCompareSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 2 || rt.NumOut() != 1 ||
			rt.Out(0).Kind() != reflect.Int {
			panic(errCompareSig)
		}
		return func(a, b interface{}) int {
			return dyn.Apply(fn, a, b).(int)
		}
	}
}

func genRangeFunc(do interface{}) func(interface{}) bool {
	switch fn := do.(type) {
	case func(value interface{}) bool:
		return fn
	case func(value interface{}):
		return func(v interface{}) bool {
			fn(v)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 1 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		return func(v interface{}) bool {
			out := dyn.Apply(do, v)
			if out != nil {
				return out.(bool)
			}
			return true
		}
	}
}
