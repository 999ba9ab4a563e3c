package candidate

// MaxCandidates is the nonconvex candidate quota K.
const MaxCandidates = 24

// ShellRadii is the fixed radial shell schedule.
var ShellRadii = []float64{1, 2, 4, 8, 100}

// ShellAngularSamples2D is the 2D shell sample count.
const ShellAngularSamples2D = 8
