package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/autodiff"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/backend/cpu"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/data"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/nn"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

type adCPU = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func TestSGDStep(t *testing.T) {
	backend := autodiff.New(cpu.New())

	p, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)
	p.AttachGrad()

	var z *tensor.Tensor[float32, adCPU]
	backend.Record(func() {
		z = p.MulScalar(2).Sum()
	})
	require.NoError(t, backend.Backward(z.Raw()))

	sgd := NewSGD([]*tensor.Tensor[float32, adCPU]{p}, 0.1)
	require.NoError(t, sgd.Step())

	// dz/dp = 2, so p ← p - 0.1·2
	assert.InDelta(t, 0.8, p.At(0), 1e-6)
	assert.InDelta(t, 1.8, p.At(1), 1e-6)
	assert.InDelta(t, 2.8, p.At(2), 1e-6)
}

func TestSGDStepFloat64(t *testing.T) {
	backend := autodiff.New(cpu.New())

	p, err := tensor.FromSlice([]float64{4}, tensor.Shape{1}, backend)
	require.NoError(t, err)
	p.AttachGrad()

	var z *tensor.Tensor[float64, adCPU]
	backend.Record(func() {
		z = p.Mul(p).Sum()
	})
	require.NoError(t, backend.Backward(z.Raw()))

	sgd := NewSGD([]*tensor.Tensor[float64, adCPU]{p}, 0.5)
	require.NoError(t, sgd.Step())

	// dz/dp = 2p = 8, so p ← 4 - 0.5·8 = 0
	assert.InDelta(t, 0, p.At(0), 1e-12)
}

func TestSGDZeroGrad(t *testing.T) {
	backend := autodiff.New(cpu.New())

	p, err := tensor.FromSlice([]float32{1}, tensor.Shape{1}, backend)
	require.NoError(t, err)
	p.AttachGrad()

	var z *tensor.Tensor[float32, adCPU]
	backend.Record(func() {
		z = p.MulScalar(3)
	})
	require.NoError(t, backend.Backward(z.Raw()))

	sgd := NewSGD([]*tensor.Tensor[float32, adCPU]{p}, 0.1)
	sgd.ZeroGrad()

	grad, err := p.Grad()
	require.NoError(t, err)
	assert.Zero(t, grad.At(0))
}

func TestSGDStepWithoutSlot(t *testing.T) {
	backend := autodiff.New(cpu.New())

	p := tensor.Zeros[float32](tensor.Shape{2}, backend)
	sgd := NewSGD([]*tensor.Tensor[float32, adCPU]{p}, 0.1)

	err := sgd.Step()
	assert.ErrorIs(t, err, tensor.ErrNotDifferentiable)
}

// End-to-end: recover known regression coefficients with mini-batch
// SGD over the full stack (iterator, linear layer, MSE, backward).
func TestLinearRegressionConvergence(t *testing.T) {
	backend := autodiff.New(cpu.New())

	const (
		n         = 500
		batchSize = 10
		epochs    = 10
		lr        = 0.05
	)

	features := tensor.Randn[float32](tensor.Shape{n, 2}, 0, 1, backend)
	noise := tensor.Randn[float32](tensor.Shape{n, 1}, 0, 0.01, backend)

	trueW, err := tensor.FromSlice([]float32{2, -3.4}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	labels := features.MatMul(trueW).AddScalar(4.2).Add(noise)

	it, err := data.NewBatchIterator(features, labels, batchSize, true, 1)
	require.NoError(t, err)

	model := nn.NewLinear[float32](2, 1, backend)
	sgd := NewSGD(model.Parameters(), lr)

	var lastLoss float64
	for epoch := 0; epoch < epochs; epoch++ {
		lastLoss = 0
		batches := 0
		for x, y, ok := it.Next(); ok; x, y, ok = it.Next() {
			var loss *tensor.Tensor[float32, adCPU]
			backend.Record(func() {
				loss = nn.MSELoss(model.Forward(x), y)
			})
			require.NoError(t, backend.Backward(loss.Raw()))
			require.NoError(t, sgd.Step())
			sgd.ZeroGrad()

			lastLoss += float64(loss.Item())
			batches++
		}
		it.Reset()
		lastLoss /= float64(batches)
	}

	assert.Less(t, lastLoss, 0.001, "final epoch loss")
	assert.InDelta(t, 2, model.Weight.At(0, 0), 0.05)
	assert.InDelta(t, -3.4, model.Weight.At(1, 0), 0.05)
	assert.InDelta(t, 4.2, model.Bias.At(0), 0.05)
}
