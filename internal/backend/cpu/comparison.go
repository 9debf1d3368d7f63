package cpu

import (
	"fmt"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Comparison operations produce Bool tensors. They follow the same
// broadcasting rules as the arithmetic kernels but are never part of
// the differentiable graph.

func (cpu *CPUBackend) compare(op string, a, b *tensor.RawTensor,
	f32 func(a, b float32) bool, f64 func(a, b float64) bool) *tensor.RawTensor {

	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
	dst := result.AsBool()

	ai := buildBroadcastIndex(a.Shape(), outShape)
	bi := buildBroadcastIndex(b.Shape(), outShape)

	switch a.DType() {
	case tensor.Float32:
		av, bv := a.AsFloat32(), b.AsFloat32()
		for i := range dst {
			dst[i] = f32(av[ai[i]], bv[bi[i]])
		}
	case tensor.Float64:
		av, bv := a.AsFloat64(), b.AsFloat64()
		for i := range dst {
			dst[i] = f64(av[ai[i]], bv[bi[i]])
		}
	default:
		panic(op + ": unsupported dtype " + a.DType().String())
	}
	return result
}

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greater", a, b,
		func(x, y float32) bool { return x > y },
		func(x, y float64) bool { return x > y })
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lower", a, b,
		func(x, y float32) bool { return x < y },
		func(x, y float64) bool { return x < y })
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greaterequal", a, b,
		func(x, y float32) bool { return x >= y },
		func(x, y float64) bool { return x >= y })
}

// LowerEqual returns a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lowerequal", a, b,
		func(x, y float32) bool { return x <= y },
		func(x, y float64) bool { return x <= y })
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("equal", a, b,
		func(x, y float32) bool { return x == y },
		func(x, y float64) bool { return x == y })
}
