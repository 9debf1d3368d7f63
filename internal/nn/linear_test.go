package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybaoxv/mxnet-the-straight-dope/internal/autodiff"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/backend/cpu"
	"github.com/andybaoxv/mxnet-the-straight-dope/internal/tensor"
)

type adCPU = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func TestLinearForward(t *testing.T) {
	backend := autodiff.New(cpu.New())

	model := NewLinear[float32](2, 1, backend)
	copy(model.Weight.Data(), []float32{2, -3})
	copy(model.Bias.Data(), []float32{1})

	x, err := tensor.FromSlice([]float32{1, 1, 2, 0.5}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	pred := model.Forward(x)
	assert.True(t, pred.Shape().Equal(tensor.Shape{2, 1}))

	// 2·1 - 3·1 + 1 = 0; 2·2 - 3·0.5 + 1 = 3.5
	assert.InDelta(t, 0, pred.At(0, 0), 1e-6)
	assert.InDelta(t, 3.5, pred.At(1, 0), 1e-6)
}

func TestLinearParameters(t *testing.T) {
	backend := autodiff.New(cpu.New())

	model := NewLinear[float32](3, 2, backend)
	params := model.Parameters()

	require.Len(t, params, 2)
	assert.True(t, params[0].Shape().Equal(tensor.Shape{3, 2}))
	assert.True(t, params[1].Shape().Equal(tensor.Shape{2}))

	// Parameters come with gradient slots attached.
	for _, p := range params {
		_, err := p.Grad()
		assert.NoError(t, err)
	}

	// Weights start near zero, bias at zero.
	for _, w := range model.Weight.Data() {
		assert.Less(t, float64(w), 0.1)
		assert.Greater(t, float64(w), -0.1)
	}
	for _, b := range model.Bias.Data() {
		assert.Zero(t, b)
	}
}

func TestSquaredError(t *testing.T) {
	backend := autodiff.New(cpu.New())

	pred, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{2, 2, 1}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	se := SquaredError(pred, target)
	assert.Equal(t, []float32{1, 0, 4}, se.Data())
}

func TestMSELoss(t *testing.T) {
	backend := autodiff.New(cpu.New())

	pred, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{1, 0, 3, 2}, tensor.Shape{4}, backend)
	require.NoError(t, err)

	loss := MSELoss(pred, target)
	require.True(t, loss.Shape().IsScalar())
	assert.InDelta(t, 2, loss.Item(), 1e-6) // (0+4+0+4)/4
}

func TestMSELossGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())

	pred, err := tensor.FromSlice([]float32{3, 5}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	pred.AttachGrad()

	var loss *tensor.Tensor[float32, adCPU]
	backend.Record(func() {
		loss = MSELoss(pred, target)
	})
	require.NoError(t, backend.Backward(loss.Raw()))

	grad, err := pred.Grad()
	require.NoError(t, err)

	// d/dpred mean((pred-target)²) = 2(pred-target)/n
	assert.InDelta(t, 2, grad.At(0), 1e-6)
	assert.InDelta(t, 4, grad.At(1), 1e-6)
}
