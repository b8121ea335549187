package firework

// Stock shape parameters.
const (
	burstDotCount   = 16
	burstDotRadius  = 8
	burstInnerRatio = 0.7
	burstRayCount   = 8
	burstRayExtent  = 1.2
	burstRayWidth   = 8

	ovalCount       = 8
	ovalLengthRatio = 0.8
	ovalWidthDp     = 10
)
