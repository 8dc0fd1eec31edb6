package neural

// NumMolecules is the length of every molecule-indexed vector carried
// through the simulation: the input/output slot tables below, and
// cell.Cell's molecule and conversion vectors.
const NumMolecules = 8

// Input slot offsets, in the fixed order named by spec.md §4.4. Each
// constant is the offset of that slot's first element within the flat
// input vector; vector slots occupy [offset, offset+length).
const (
	inVelocityMagnitude     = 0
	inAccelerationMagnitude = inVelocityMagnitude + 1
	inRadius                = inAccelerationMagnitude + 1
	inAge                   = inRadius + 1
	inEnergyAmount          = inAge + 1
	inEnergyStored          = inEnergyAmount + 1
	inEnergyDelta           = inEnergyStored + 1
	inZeroEnergy            = inEnergyDelta + 1
	inDivisionEnergyReserve = inZeroEnergy + 1
	inDivisionGrowFactor    = inDivisionEnergyReserve + 1
	inMoleculesProportion   = inDivisionGrowFactor + 1 // + NumMolecules

	inMoleculesTotal              = inMoleculesProportion + NumMolecules
	inMovementDirection           = inMoleculesTotal + 1
	inMovementSpeed               = inMovementDirection + 1
	inMovementVelocity            = inMovementSpeed + 1 // + 2
	inMovementVelocityMagnitude   = inMovementVelocity + 2
	inContactEnergyAbsorption     = inMovementVelocityMagnitude + 1
	inContactCount                = inContactEnergyAbsorption + 1
	inContactNormal               = inContactCount + 1 // + 2
	inContactNormalMagnitude      = inContactNormal + 2
)

// NumInputs is the total width of the flat input vector.
const NumInputs = inContactNormalMagnitude + 1

// Output slot offsets, in the fixed order named by spec.md §4.4.
const (
	outEnergyMetabolism        = 0                                  // + NumMolecules
	outDivisionEnergyReserve   = outEnergyMetabolism + NumMolecules
	outContractionAmount       = outDivisionEnergyReserve + 1
	outMovementAngularSpeed    = outContractionAmount + 1
	outMovementKineticSpeed    = outMovementAngularSpeed + 1
	outContactEnergyAbsorption = outMovementKineticSpeed + 1
)

// NumOutputs is the total width of the flat output vector.
const NumOutputs = outContactEnergyAbsorption + 1

// NumProcessing is the hidden-layer width, H = NumInputs/2.
const NumProcessing = NumInputs / 2
