package tensor

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case bool:
		one = true
	}

	for i := range data {
		data[i] = one.(T)
	}
	return t
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// OnesRaw creates an all-ones RawTensor.
func OnesRaw(shape Shape, dtype DataType, device Device) *RawTensor {
	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		panic(err)
	}
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	default:
		panic("ones: only float32/float64 supported")
	}
	return raw
}

// OnesLike creates an all-ones RawTensor with the same shape and
// dtype as t. Used by the backward engine for the default head
// gradient.
func OnesLike(t *RawTensor) *RawTensor {
	return OnesRaw(t.Shape(), t.DType(), t.Device())
}

// ZerosLike creates an all-zeros RawTensor with the same shape and
// dtype as t.
func ZerosLike(t *RawTensor) *RawTensor {
	raw, err := NewRaw(t.Shape(), t.DType(), t.Device())
	if err != nil {
		panic(err)
	}
	return raw
}

// Randn creates a tensor with values sampled from N(mean, stddev²).
// Only works with float types.
func Randn[T DType, B Backend](shape Shape, mean, stddev float64, b B) *Tensor[T, B] {
	dist := distuv.Normal{Mu: mean, Sigma: stddev}
	return sample[T, B](shape, b, dist.Rand)
}

// Rand creates a tensor with values uniformly distributed in [lo, hi).
// Only works with float types.
func Rand[T DType, B Backend](shape Shape, lo, hi float64, b B) *Tensor[T, B] {
	dist := distuv.Uniform{Min: lo, Max: hi}
	return sample[T, B](shape, b, dist.Rand)
}

// sample fills a fresh tensor from a scalar sampling function.
func sample[T DType, B Backend](shape Shape, b B, draw func() float64) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	switch data := any(t.Data()).(type) {
	case []float32:
		for i := range data {
			data[i] = float32(draw())
		}
	case []float64:
		for i := range data {
			data[i] = draw()
		}
	default:
		panic("random sampling only supports float32 and float64 types")
	}
	return t
}
