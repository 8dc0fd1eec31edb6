package neural

import (
	"github.com/vlife-go/vlife/genome"
	"github.com/vlife-go/vlife/vmath"
)

// Activation is a per-layer transfer function applied element-wise to a
// layer's weighted-sum-plus-bias output.
type Activation int

const (
	Linear Activation = iota
	Sigmoid
	Tanh
	Relu
	Swish
)

// Apply runs this activation over a single value.
func (a Activation) Apply(x float32) float32 {
	switch a {
	case Linear:
		return x
	case Sigmoid:
		return 1 / (1 + vmath.Exp(-x))
	case Tanh:
		ePos := vmath.Exp(x)
		eNeg := vmath.Exp(-x)
		return (ePos - eNeg) / (ePos + eNeg)
	case Relu:
		return vmath.Max(0, x)
	case Swish:
		return x / (1 + vmath.Exp(-x))
	default:
		return x
	}
}

// ApplyVector applies this activation element-wise, in place.
func (a Activation) ApplyVector(v []float32) {
	for i := range v {
		v[i] = a.Apply(v[i])
	}
}

// Gene encodes this activation as the single enumerated scalar the genome
// layer uses: Linear:1, Sigmoid:2, Tanh:3, Relu:4, Swish:5.
func (a Activation) Gene() float32 {
	switch a {
	case Linear:
		return 1
	case Sigmoid:
		return 2
	case Tanh:
		return 3
	case Relu:
		return 4
	case Swish:
		return 5
	default:
		return 1
	}
}

// String names this activation, for logging and debug display.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "linear"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case Relu:
		return "relu"
	case Swish:
		return "swish"
	default:
		return "unknown"
	}
}

// BuildGenome records this activation's gene under "activation_function" in
// builder, the way the source's BuildGenome impl for ActivationFunction does.
func (a Activation) BuildGenome(builder *genome.Builder) {
	builder.Add("activation_function", a.Gene())
}

// activationFromGene decodes the enumerated scalar Gene() produces. An
// out-of-range value (a corrupted or hand-edited genome) falls back to
// Linear rather than panicking.
func activationFromGene(v float32) Activation {
	switch v {
	case 2:
		return Sigmoid
	case 3:
		return Tanh
	case 4:
		return Relu
	case 5:
		return Swish
	default:
		return Linear
	}
}

// ApplyActivationGenome reads an activation's gene back from reader, returning the
// decoded Activation. Absent genes fall back to fallback.
func ApplyActivationGenome(reader *genome.Reader, fallback Activation) Activation {
	v, ok := reader.Get("activation_function")
	if !ok {
		return fallback
	}
	return activationFromGene(v)
}
