package tensor_test

import (
	"errors"
	"testing"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/backend/cpu"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if !x.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", x.Shape())
	}
	if x.DType() != tensor.Float32 {
		t.Errorf("dtype = %s, want float32", x.DType())
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %v, want 6", got)
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	backend := cpu.New()

	_, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, backend)
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestAtSet(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
	x.Set(7, 0, 1)
	if got := x.At(0, 1); got != 7 {
		t.Errorf("At(0,1) = %v, want 7", got)
	}
	if got := x.At(1, 0); got != 0 {
		t.Errorf("At(1,0) = %v, want 0", got)
	}
}

func TestItem(t *testing.T) {
	backend := cpu.New()

	x := tensor.Full[float64](tensor.Shape{}, 3.5, backend)
	if got := x.Item(); got != 3.5 {
		t.Errorf("Item() = %v, want 3.5", got)
	}
}

func TestCreation(t *testing.T) {
	backend := cpu.New()

	ones := tensor.Ones[float32](tensor.Shape{3}, backend)
	for i, v := range ones.Data() {
		if v != 1 {
			t.Errorf("ones[%d] = %v", i, v)
		}
	}

	full := tensor.Full[float32](tensor.Shape{2}, 2.5, backend)
	for i, v := range full.Data() {
		if v != 2.5 {
			t.Errorf("full[%d] = %v", i, v)
		}
	}
}

func TestRandnMoments(t *testing.T) {
	backend := cpu.New()

	x := tensor.Randn[float64](tensor.Shape{10000}, 5, 2, backend)

	var sum float64
	for _, v := range x.Data() {
		sum += v
	}
	mean := sum / float64(x.NumElements())
	if mean < 4.8 || mean > 5.2 {
		t.Errorf("sample mean = %v, want ≈ 5", mean)
	}

	var sq float64
	for _, v := range x.Data() {
		sq += (v - mean) * (v - mean)
	}
	variance := sq / float64(x.NumElements())
	if variance < 3.2 || variance > 4.8 {
		t.Errorf("sample variance = %v, want ≈ 4", variance)
	}
}

func TestRandRange(t *testing.T) {
	backend := cpu.New()

	x := tensor.Rand[float32](tensor.Shape{1000}, -1, 1, backend)
	for i, v := range x.Data() {
		if v < -1 || v >= 1 {
			t.Fatalf("x[%d] = %v outside [-1, 1)", i, v)
		}
	}
}

func TestClone(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	y := x.Clone()
	y.Set(9, 0)
	if x.At(0) != 1 {
		t.Errorf("clone shares memory with original")
	}
}

func TestNorm(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if got := x.Norm().Item(); got != 5 {
		t.Errorf("Norm = %v, want 5", got)
	}
}

func TestAttachGradRequiresGradBackend(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{2}, backend)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic attaching a gradient on a plain backend")
		}
	}()
	x.AttachGrad()
}
