//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"math"
	"syscall/js"
	"unsafe"

	"github.com/hupe1980/vecsim"
	"github.com/hupe1980/vecsim/bench"
	"github.com/hupe1980/vecsim/memory"
)

var errArgs = errors.New("invalid arguments")

// maxSafeInteger is Number.MAX_SAFE_INTEGER.
const maxSafeInteger = 1<<53 - 1

type bridge struct {
	alloc  *memory.Allocator
	logger *vecsim.Logger
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

func arity(args []js.Value, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s", errArgs, usage)
	}
	return nil
}

// numberArg converts an integral JS number. Anything else is rejected
// before syscall/js gets a chance to panic on it.
func numberArg(v js.Value, name string) (int, error) {
	if v.Type() != js.TypeNumber {
		return 0, fmt.Errorf("%w: %s must be a number, got %s", errArgs, name, v.Type())
	}
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", errArgs, name, f)
	}
	return int(f), nil
}

func handleArg(v js.Value) (memory.Handle, error) {
	n, err := numberArg(v, "handle")
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", memory.ErrInvalidHandle, n)
	}
	return memory.Handle(n), nil
}

func isTypedArray(v js.Value, ctor string) bool {
	return v.Type() == js.TypeObject && v.InstanceOf(js.Global().Get(ctor))
}

func (b *bridge) newVectorSearch(_ js.Value, args []js.Value) any {
	if err := arity(args, 1, "VectorSearch(dimensions)"); err != nil {
		return jsError(err)
	}
	dim, err := numberArg(args[0], "dimensions")
	if err != nil {
		return jsError(err)
	}
	vs, err := vecsim.New(dim, vecsim.WithLogger(b.logger))
	if err != nil {
		return jsError(err)
	}

	e := &engine{bridge: b, vs: vs}
	obj := js.Global().Get("Object").New()
	obj.Set("dimensions", vs.Dimensions())
	obj.Set("kernel", vs.Kernel())
	for name, fn := range e.methods() {
		f := js.FuncOf(fn)
		e.funcs = append(e.funcs, f)
		obj.Set(name, f)
	}
	release := js.FuncOf(func(js.Value, []js.Value) any {
		e.release()
		return js.Undefined()
	})
	e.funcs = append(e.funcs, release)
	obj.Set("release", release)
	return obj
}

// engine backs one JS VectorSearch object.
type engine struct {
	*bridge
	vs    *vecsim.VectorSearch
	funcs []js.Func
}

func (e *engine) methods() map[string]func(js.Value, []js.Value) any {
	return map[string]func(js.Value, []js.Value) any{
		"cosineSimilarity":      e.pair(e.vs.CosineSimilarity),
		"euclideanDistance":     e.pair(e.vs.EuclideanDistance),
		"dotProduct":            e.pair(e.vs.DotProduct),
		"cosineSimilaritySIMD":  e.cosineSIMD,
		"normalizeVector":       e.normalize,
		"batchCosineSimilarity": e.batchCosine,
		"findTopK":              e.findTopK,
	}
}

// release frees the JS callbacks; the object is unusable afterwards.
func (e *engine) release() {
	for _, f := range e.funcs {
		f.Release()
	}
	e.funcs = nil
}

func (e *engine) pair(fn func(a, b []float64) (float64, error)) func(js.Value, []js.Value) any {
	return func(_ js.Value, args []js.Value) any {
		if err := arity(args, 2, "expected (vec1, vec2)"); err != nil {
			return jsError(err)
		}
		v1, _, err := e.float64s(args[0], "vec1")
		if err != nil {
			return jsError(err)
		}
		v2, _, err := e.float64s(args[1], "vec2")
		if err != nil {
			return jsError(err)
		}
		r, err := fn(v1, v2)
		if err != nil {
			return jsError(err)
		}
		return r
	}
}

func (e *engine) cosineSIMD(_ js.Value, args []js.Value) any {
	if err := arity(args, 2, "cosineSimilaritySIMD(vec1, vec2)"); err != nil {
		return jsError(err)
	}
	v1, err := float32sArg(args[0], "vec1")
	if err != nil {
		return jsError(err)
	}
	v2, err := float32sArg(args[1], "vec2")
	if err != nil {
		return jsError(err)
	}
	s, err := e.vs.CosineSimilaritySIMD(v1, v2)
	if err != nil {
		return jsError(err)
	}
	return float64(s)
}

func (e *engine) normalize(_ js.Value, args []js.Value) any {
	if err := arity(args, 1, "normalizeVector(vec)"); err != nil {
		return jsError(err)
	}
	v, shared, err := e.float64s(args[0], "vec")
	if err != nil {
		return jsError(err)
	}
	if err := e.vs.NormalizeVector(v); err != nil {
		return jsError(err)
	}
	if !shared {
		float64sToJS(args[0], v)
	}
	return js.Undefined()
}

func (e *engine) batchCosine(_ js.Value, args []js.Value) any {
	if err := arity(args, 3, "batchCosineSimilarity(query, vectors, count)"); err != nil {
		return jsError(err)
	}
	q, set, err := e.querySet(args[0], args[1])
	if err != nil {
		return jsError(err)
	}
	count, err := numberArg(args[2], "count")
	if err != nil {
		return jsError(err)
	}
	scores, err := e.vs.BatchCosineSimilarity(q, set, count)
	if err != nil {
		return jsError(err)
	}
	out := js.Global().Get("Float64Array").New(len(scores))
	float64sToJS(out, scores)
	return out
}

func (e *engine) findTopK(_ js.Value, args []js.Value) any {
	if err := arity(args, 4, "findTopK(query, vectors, count, k)"); err != nil {
		return jsError(err)
	}
	q, set, err := e.querySet(args[0], args[1])
	if err != nil {
		return jsError(err)
	}
	count, err := numberArg(args[2], "count")
	if err != nil {
		return jsError(err)
	}
	k, err := numberArg(args[3], "k")
	if err != nil {
		return jsError(err)
	}
	top, err := e.vs.FindTopK(q, set, count, k)
	if err != nil {
		return jsError(err)
	}
	out := js.Global().Get("Uint32Array").New(len(top))
	for i, idx := range top {
		out.SetIndex(i, idx)
	}
	return out
}

func (b *bridge) querySet(q, set js.Value) ([]float64, []float64, error) {
	query, _, err := b.float64s(q, "query")
	if err != nil {
		return nil, nil, err
	}
	vectors, _, err := b.float64s(set, "vectors")
	if err != nil {
		return nil, nil, err
	}
	return query, vectors, nil
}

// float64s resolves an argument to a Go slice. A number is treated as an
// allocator handle and resolved without copying (shared == true); a
// Float64Array is copied in. Any other value is rejected.
func (b *bridge) float64s(v js.Value, name string) ([]float64, bool, error) {
	if v.Type() == js.TypeNumber {
		h, err := handleArg(v)
		if err != nil {
			return nil, false, err
		}
		s, err := b.alloc.Float64s(h)
		return s, true, err
	}
	if !isTypedArray(v, "Float64Array") {
		return nil, false, fmt.Errorf("%w: %s must be a Float64Array or buffer handle, got %s", errArgs, name, describe(v))
	}
	return float64sFromJS(v), false, nil
}

func float32sArg(v js.Value, name string) ([]float32, error) {
	if !isTypedArray(v, "Float32Array") {
		return nil, fmt.Errorf("%w: %s must be a Float32Array, got %s", errArgs, name, describe(v))
	}
	return float32sFromJS(v), nil
}

// describe names a JS value's constructor for error messages.
func describe(v js.Value) string {
	if v.Type() == js.TypeObject {
		if c := v.Get("constructor"); c.Type() == js.TypeFunction {
			return c.Get("name").String()
		}
	}
	return v.Type().String()
}

func (b *bridge) allocate(_ js.Value, args []js.Value) any {
	if err := arity(args, 1, "allocateFloat64Array(size)"); err != nil {
		return jsError(err)
	}
	size, err := numberArg(args[0], "size")
	if err != nil {
		return jsError(err)
	}
	h, err := b.alloc.Allocate(size)
	if err != nil {
		return jsError(err)
	}
	return float64(h)
}

func (b *bridge) free(_ js.Value, args []js.Value) any {
	if err := arity(args, 2, "freeFloat64Array(handle, size)"); err != nil {
		return jsError(err)
	}
	h, err := handleArg(args[0])
	if err != nil {
		return jsError(err)
	}
	size, err := numberArg(args[1], "size")
	if err != nil {
		return jsError(err)
	}
	if err := b.alloc.Free(h, size); err != nil {
		return jsError(err)
	}
	return js.Undefined()
}

func (b *bridge) write(_ js.Value, args []js.Value) any {
	if err := arity(args, 2, "writeFloat64Array(handle, data)"); err != nil {
		return jsError(err)
	}
	h, err := handleArg(args[0])
	if err != nil {
		return jsError(err)
	}
	if !isTypedArray(args[1], "Float64Array") {
		return jsError(fmt.Errorf("%w: data must be a Float64Array, got %s", errArgs, describe(args[1])))
	}
	dst, err := b.alloc.Float64s(h)
	if err != nil {
		return jsError(err)
	}
	if n := args[1].Get("length").Int(); n != len(dst) {
		return jsError(fmt.Errorf("%w: buffer holds %d elements, data has %d", memory.ErrSizeMismatch, len(dst), n))
	}
	js.CopyBytesToGo(asBytes(dst), byteView(args[1]))
	return js.Undefined()
}

func (b *bridge) read(_ js.Value, args []js.Value) any {
	if err := arity(args, 1, "readFloat64Array(handle)"); err != nil {
		return jsError(err)
	}
	h, err := handleArg(args[0])
	if err != nil {
		return jsError(err)
	}
	src, err := b.alloc.Float64s(h)
	if err != nil {
		return jsError(err)
	}
	out := js.Global().Get("Float64Array").New(len(src))
	float64sToJS(out, src)
	return out
}

func (b *bridge) address(_ js.Value, args []js.Value) any {
	if err := arity(args, 1, "float64ArrayAddress(handle)"); err != nil {
		return jsError(err)
	}
	h, err := handleArg(args[0])
	if err != nil {
		return jsError(err)
	}
	addr, err := b.alloc.Addr(h)
	if err != nil {
		return jsError(err)
	}
	return float64(addr)
}

// memorySize reports the runtime's mapped bytes. A host that passes its
// WebAssembly.Memory gets the exact linear-memory size instead.
func (b *bridge) memorySize(_ js.Value, args []js.Value) any {
	if len(args) == 1 && isWasmMemory(args[0]) {
		return args[0].Get("buffer").Get("byteLength").Float()
	}
	return float64(b.alloc.MemorySize())
}

func isWasmMemory(v js.Value) bool {
	wasm := js.Global().Get("WebAssembly")
	if wasm.Type() != js.TypeObject {
		return false
	}
	return v.Type() == js.TypeObject && v.InstanceOf(wasm.Get("Memory"))
}

func benchmarkOperations(_ js.Value, args []js.Value) any {
	if err := arity(args, 2, "benchmarkOperations(dimensions, iterations)"); err != nil {
		return jsError(err)
	}
	dim, iters, err := benchArgs(args)
	if err != nil {
		return jsError(err)
	}
	r, err := bench.Operations(dim, iters)
	if err != nil {
		return jsError(err)
	}
	return r.String()
}

func benchmarkSIMD(_ js.Value, args []js.Value) any {
	if err := arity(args, 2, "benchmarkSIMD(dimensions, iterations)"); err != nil {
		return jsError(err)
	}
	dim, iters, err := benchArgs(args)
	if err != nil {
		return jsError(err)
	}
	r, err := bench.SIMD(dim, iters)
	if err != nil {
		return jsError(err)
	}
	return r.String()
}

func benchArgs(args []js.Value) (int, int, error) {
	dim, err := numberArg(args[0], "dimensions")
	if err != nil {
		return 0, 0, err
	}
	iters, err := numberArg(args[1], "iterations")
	if err != nil {
		return 0, 0, err
	}
	return dim, iters, nil
}

// byteView returns a Uint8Array over the bytes of a typed array.
func byteView(typed js.Value) js.Value {
	return js.Global().Get("Uint8Array").New(typed.Get("buffer"), typed.Get("byteOffset"), typed.Get("byteLength"))
}

func asBytes[T float32 | float64](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

func float64sFromJS(typed js.Value) []float64 {
	out := make([]float64, typed.Get("length").Int())
	js.CopyBytesToGo(asBytes(out), byteView(typed))
	return out
}

func float32sFromJS(typed js.Value) []float32 {
	out := make([]float32, typed.Get("length").Int())
	js.CopyBytesToGo(asBytes(out), byteView(typed))
	return out
}

func float64sToJS(typed js.Value, src []float64) {
	js.CopyBytesToJS(byteView(typed), asBytes(src))
}
