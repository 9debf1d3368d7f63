package cpu

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

// Sqrt computes the element-wise square root.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Errorf("sqrt: %w", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i := range dst {
			dst[i] = math32.Sqrt(src[i])
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i := range dst {
			dst[i] = math.Sqrt(src[i])
		}
	default:
		panic("sqrt: unsupported dtype " + x.DType().String())
	}
	return result
}
