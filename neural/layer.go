package neural

import (
	"math/rand"

	"github.com/vlife-go/vlife/genome"
)

// Layer is a dense layer with I inputs and O outputs: a row-major weight
// matrix (one row per output neuron), a bias per output, and a fixed
// activation applied after the weighted sum. Grounded in
// original_source/vlife-simulator/src/neurons.rs's Layer<const I, const O>.
type Layer struct {
	numInputs  int
	weights    [][]float32 // [output][input]
	bias       []float32
	activation Activation
	outputs    []float32
}

// NewLayer returns a layer of the given shape with zeroed weights, bias
// and outputs. Use RandomLayer for a genetically meaningful layer.
func NewLayer(numInputs, numOutputs int, activation Activation) *Layer {
	weights := make([][]float32, numOutputs)
	for i := range weights {
		weights[i] = make([]float32, numInputs)
	}
	return &Layer{
		numInputs:  numInputs,
		weights:    weights,
		bias:       make([]float32, numOutputs),
		activation: activation,
		outputs:    make([]float32, numOutputs),
	}
}

// RandomLayer returns a layer of the given shape with weights and biases
// sampled uniformly from [-1, 1].
func RandomLayer(numInputs, numOutputs int, activation Activation, rng *rand.Rand) *Layer {
	l := NewLayer(numInputs, numOutputs, activation)
	for o := 0; o < numOutputs; o++ {
		for i := 0; i < numInputs; i++ {
			l.weights[o][i] = uniform(rng)
		}
		l.bias[o] = uniform(rng)
	}
	return l
}

func uniform(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}

// Clone returns an independent copy of this layer, sharing no backing
// storage with l.
func (l *Layer) Clone() *Layer {
	weights := make([][]float32, len(l.weights))
	for i, row := range l.weights {
		weights[i] = append([]float32(nil), row...)
	}
	return &Layer{
		numInputs:  l.numInputs,
		weights:    weights,
		bias:       append([]float32(nil), l.bias...),
		activation: l.activation,
		outputs:    append([]float32(nil), l.outputs...),
	}
}

// NumOutputs returns this layer's output width.
func (l *Layer) NumOutputs() int {
	return len(l.bias)
}

// Outputs returns this layer's most recently computed outputs.
func (l *Layer) Outputs() []float32 {
	return l.outputs
}

// Process computes weights*input + bias, then applies this layer's
// activation element-wise, storing the result in Outputs.
func (l *Layer) Process(input []float32) {
	for o, row := range l.weights {
		var sum float32
		for i, w := range row {
			sum += w * input[i]
		}
		l.outputs[o] = sum + l.bias[o]
	}
	l.activation.ApplyVector(l.outputs)
}

// NumWorkingNeurons counts output neurons whose incoming weight row is not
// all-zero. This is a read-only predicate over the current weights: it
// must never mutate them, the way a naively-transliterated "mark active
// rows then sum" pass could if written carelessly in place.
func (l *Layer) NumWorkingNeurons() float32 {
	var count float32
	for _, row := range l.weights {
		for _, w := range row {
			if w != 0 {
				count++
				break
			}
		}
	}
	return count
}

// BuildGenome records this layer's weights, bias and activation under
// builder, nested as "weights", "bias" and "activation" the way
// the source's #[build_genome(nested)] fields do.
func (l *Layer) BuildGenome(builder *genome.Builder) {
	builder.Nested("weights").AddMatrix(l.weights)
	builder.Nested("bias").AddVector(l.bias)
	l.activation.BuildGenome(builder.Nested("activation"))
}

// ApplyGenome overwrites this layer's weights, bias and activation from
// reader wherever the corresponding gene is present, leaving any missing
// entry at its current value.
func (l *Layer) ApplyGenome(reader *genome.Reader) {
	if weights, ok := reader.Nested("weights").GetMatrix(len(l.weights), l.numInputs); ok {
		l.weights = weights
	}
	if bias, ok := reader.Nested("bias").GetVector(len(l.bias)); ok {
		l.bias = bias
	}
	l.activation = ApplyActivationGenome(reader.Nested("activation"), l.activation)
}
