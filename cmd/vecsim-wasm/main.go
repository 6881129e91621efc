//go:build js && wasm

// Command vecsim-wasm exposes vecsim to a JavaScript host.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o vecsim.wasm ./cmd/vecsim-wasm
//
// After the module starts, the host finds these globals:
//
//	const vs = new VectorSearch(384)
//	vs.cosineSimilarity(a, b)            // Float64Array | handle
//	vs.cosineSimilaritySIMD(a, b)        // Float32Array
//	vs.euclideanDistance(a, b)
//	vs.dotProduct(a, b)
//	vs.normalizeVector(v)                // writes back into v
//	vs.batchCosineSimilarity(q, set, n)  // Float64Array
//	vs.findTopK(q, set, n, k)            // Uint32Array
//	vs.release()                         // frees the object's callbacks
//
//	const h = allocateFloat64Array(n)
//	writeFloat64Array(h, data); readFloat64Array(h)
//	float64ArrayAddress(h)               // byte offset in linear memory
//	freeFloat64Array(h, n)
//	getMemorySize([wasmMemory])
//	benchmarkOperations(dim, iters); benchmarkSIMD(dim, iters)
//
// Float64 operands are Float64Arrays (copied) or buffer handles (shared).
// Handles are integers below 2^53 and survive as JS numbers.
// Failed calls return a JS Error value instead of aborting the module.
package main

import (
	"syscall/js"

	"github.com/hupe1980/vecsim"
	"github.com/hupe1980/vecsim/memory"
)

func main() {
	logger := vecsim.NoopLogger()
	b := &bridge{
		alloc:  memory.New(memory.WithLogger(logger.Logger)),
		logger: logger,
	}

	global := js.Global()
	global.Set("VectorSearch", js.FuncOf(b.newVectorSearch))
	global.Set("allocateFloat64Array", js.FuncOf(b.allocate))
	global.Set("freeFloat64Array", js.FuncOf(b.free))
	global.Set("writeFloat64Array", js.FuncOf(b.write))
	global.Set("readFloat64Array", js.FuncOf(b.read))
	global.Set("float64ArrayAddress", js.FuncOf(b.address))
	global.Set("getMemorySize", js.FuncOf(b.memorySize))
	global.Set("benchmarkOperations", js.FuncOf(benchmarkOperations))
	global.Set("benchmarkSIMD", js.FuncOf(benchmarkSIMD))

	logger.Debug("vector search wasm module initialized")
	select {}
}
