package cpu

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/parallel"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// MatMul multiplies two 2-d tensors: [m,k] x [k,n] -> [m,n].
//
// Rows of the result are independent, so they are split across the worker
// pool. Each row runs the kernel picked at startup: on AVX2+FMA hardware
// an 8-wide unrolled accumulation loop the compiler turns into packed
// float ops, elsewhere a portable scalar loop.
func (c *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	as, bs := a.Shape(), b.Shape()
	if len(as) != 2 || len(bs) != 2 {
		panic(fmt.Sprintf("cpu: matmul needs 2-d tensors, got %v x %v", []int(as), []int(bs)))
	}
	if as[1] != bs[0] {
		panic(fmt.Sprintf("cpu: matmul inner dimensions differ: %v x %v", []int(as), []int(bs)))
	}
	checkSameDType("matmul", a, b)

	m, k, n := as[0], as[1], bs[1]
	out := newRaw(tensor.Shape{m, n}, a.DType(), c.Device())

	switch a.DType() {
	case tensor.Float32:
		matmulRows(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, c.pool)
	case tensor.Float64:
		matmulRows(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, c.pool)
	}
	return out
}

func matmulRows[T tensor.DType](dst, a, b []T, m, k, n int, pool parallel.Config) {
	// One parallel task per output row keeps writes disjoint.
	parallel.For(m, func(i int) {
		ai := a[i*k : (i+1)*k]
		ci := dst[i*n : (i+1)*n]
		if useWideKernel {
			rowKernelWide(ci, ai, b, n)
		} else {
			rowKernelPortable(ci, ai, b, n)
		}
	}, pool)
}

// rowKernelWide accumulates c_i += a_ik * b_k in 8-element strips. The
// strip loop has no cross-iteration dependencies, which is what the
// vectorizer needs to emit FMA-packed code.
func rowKernelWide[T tensor.DType](ci, ai, b []T, n int) {
	for kk, av := range ai {
		bk := b[kk*n : (kk+1)*n]
		j := 0
		for ; j+8 <= n; j += 8 {
			s := bk[j : j+8 : j+8]
			d := ci[j : j+8 : j+8]
			d[0] += av * s[0]
			d[1] += av * s[1]
			d[2] += av * s[2]
			d[3] += av * s[3]
			d[4] += av * s[4]
			d[5] += av * s[5]
			d[6] += av * s[6]
			d[7] += av * s[7]
		}
		for ; j < n; j++ {
			ci[j] += av * bk[j]
		}
	}
}

// rowKernelPortable is the straightforward saxpy-per-row loop.
func rowKernelPortable[T tensor.DType](ci, ai, b []T, n int) {
	for kk, av := range ai {
		bk := b[kk*n : (kk+1)*n]
		for j, bv := range bk {
			ci[j] += av * bv
		}
	}
}
