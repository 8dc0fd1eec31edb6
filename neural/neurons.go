package neural

import (
	"math/rand"

	"github.com/vlife-go/vlife/genome"
)

// Neurons is a cell's fixed-topology feed-forward controller: a flat,
// typed-slot input vector feeding a three-layer dense network
// (input -> Sigmoid -> Tanh -> Tanh), whose final layer's outputs are read
// through the typed output slots. Grounded in
// original_source/vlife-simulator/src/neurons.rs.
type Neurons struct {
	inputs          [NumInputs]float32
	inputLayer      *Layer
	processingLayer *Layer
	outputLayer     *Layer
	workingNeurons  float32
}

// NewRandomNeurons returns a Neurons with every layer's weights and bias
// sampled uniformly from [-1, 1], and the working-neuron count cached at
// construction time (the source computes this once and never recomputes
// it across the neurons' lifetime).
func NewRandomNeurons(rng *rand.Rand) *Neurons {
	inputLayer := RandomLayer(NumInputs, NumProcessing, Sigmoid, rng)
	processingLayer := RandomLayer(NumProcessing, NumProcessing, Tanh, rng)
	outputLayer := RandomLayer(NumProcessing, NumOutputs, Tanh, rng)

	working := inputLayer.NumWorkingNeurons() + processingLayer.NumWorkingNeurons() + outputLayer.NumWorkingNeurons()

	return &Neurons{
		inputLayer:      inputLayer,
		processingLayer: processingLayer,
		outputLayer:     outputLayer,
		workingNeurons:  working,
	}
}

// Clone returns an independent copy of n, sharing no backing storage —
// used when a cell divides and its sibling inherits the parent's neural
// controller rather than sharing the live instance.
func (n *Neurons) Clone() *Neurons {
	return &Neurons{
		inputs:          n.inputs,
		inputLayer:      n.inputLayer.Clone(),
		processingLayer: n.processingLayer.Clone(),
		outputLayer:     n.outputLayer.Clone(),
		workingNeurons:  n.workingNeurons,
	}
}

// NumWorkingNeurons returns the cached cost proxy: the count of neurons
// across all three layers whose incoming weight row is not all-zero. This
// accessor is read-only and must never mutate any layer's weights.
func (n *Neurons) NumWorkingNeurons() float32 {
	return n.workingNeurons
}

// Process runs a full forward pass: input layer, then processing layer,
// then output layer, each consuming the previous layer's outputs.
func (n *Neurons) Process() {
	n.inputLayer.Process(n.inputs[:])
	n.processingLayer.Process(n.inputLayer.Outputs())
	n.outputLayer.Process(n.processingLayer.Outputs())
}

// BuildGenome records every layer's genes under builder, nested as
// "input_layer", "processing_layer" and "output_layer".
func (n *Neurons) BuildGenome(builder *genome.Builder) {
	n.inputLayer.BuildGenome(builder.Nested("input_layer"))
	n.processingLayer.BuildGenome(builder.Nested("processing_layer"))
	n.outputLayer.BuildGenome(builder.Nested("output_layer"))
}

// ApplyGenome overwrites every layer's weights, bias and activation from
// reader, then recomputes the cached working-neuron count — applying a
// genome changes the weights it is a cost proxy over.
func (n *Neurons) ApplyGenome(reader *genome.Reader) {
	n.inputLayer.ApplyGenome(reader.Nested("input_layer"))
	n.processingLayer.ApplyGenome(reader.Nested("processing_layer"))
	n.outputLayer.ApplyGenome(reader.Nested("output_layer"))
	n.workingNeurons = n.inputLayer.NumWorkingNeurons() +
		n.processingLayer.NumWorkingNeurons() +
		n.outputLayer.NumWorkingNeurons()
}

// --- typed input setters, in slot order ---

func (n *Neurons) SetVelocityMagnitude(v float32)     { n.inputs[inVelocityMagnitude] = v }
func (n *Neurons) SetAccelerationMagnitude(v float32) { n.inputs[inAccelerationMagnitude] = v }
func (n *Neurons) SetRadius(v float32)                { n.inputs[inRadius] = v }
func (n *Neurons) SetAge(v float32)                   { n.inputs[inAge] = v }
func (n *Neurons) SetEnergyAmount(v float32)          { n.inputs[inEnergyAmount] = v }
func (n *Neurons) SetEnergyStored(v float32)          { n.inputs[inEnergyStored] = v }
func (n *Neurons) SetEnergyDelta(v float32)           { n.inputs[inEnergyDelta] = v }
func (n *Neurons) SetZeroEnergy(v float32)            { n.inputs[inZeroEnergy] = v }
func (n *Neurons) SetDivisionEnergyReserve(v float32) { n.inputs[inDivisionEnergyReserve] = v }
func (n *Neurons) SetDivisionGrowFactor(v float32)    { n.inputs[inDivisionGrowFactor] = v }

func (n *Neurons) SetMoleculesProportion(v []float32) {
	copy(n.inputs[inMoleculesProportion:inMoleculesProportion+NumMolecules], v)
}
func (n *Neurons) SetMoleculesTotal(v float32)    { n.inputs[inMoleculesTotal] = v }
func (n *Neurons) SetMovementDirection(v float32) { n.inputs[inMovementDirection] = v }
func (n *Neurons) SetMovementSpeed(v float32)     { n.inputs[inMovementSpeed] = v }

func (n *Neurons) SetMovementVelocity(x, y float32) {
	n.inputs[inMovementVelocity] = x
	n.inputs[inMovementVelocity+1] = y
}
func (n *Neurons) SetMovementVelocityMagnitude(v float32) { n.inputs[inMovementVelocityMagnitude] = v }
func (n *Neurons) SetContactEnergyAbsorptionIn(v float32) { n.inputs[inContactEnergyAbsorption] = v }
func (n *Neurons) SetContactCount(v float32)              { n.inputs[inContactCount] = v }

func (n *Neurons) SetContactNormal(x, y float32) {
	n.inputs[inContactNormal] = x
	n.inputs[inContactNormal+1] = y
}
func (n *Neurons) SetContactNormalMagnitude(v float32) { n.inputs[inContactNormalMagnitude] = v }

// --- typed output getters, in slot order ---

func (n *Neurons) EnergyMetabolism() []float32 {
	out := n.outputLayer.Outputs()
	return out[outEnergyMetabolism : outEnergyMetabolism+NumMolecules]
}
func (n *Neurons) DivisionEnergyReserveOut() float32 {
	return n.outputLayer.Outputs()[outDivisionEnergyReserve]
}
func (n *Neurons) ContractionAmountOut() float32 {
	return n.outputLayer.Outputs()[outContractionAmount]
}
func (n *Neurons) MovementAngularSpeedOut() float32 {
	return n.outputLayer.Outputs()[outMovementAngularSpeed]
}
func (n *Neurons) MovementKineticSpeedOut() float32 {
	return n.outputLayer.Outputs()[outMovementKineticSpeed]
}
func (n *Neurons) ContactEnergyAbsorptionOut() float32 {
	return n.outputLayer.Outputs()[outContactEnergyAbsorption]
}
