package vector

// Epsilon is the absolute tolerance used for approximate equality and for
// degeneracy checks (near-zero norms, near-zero halfspace normals). Part of
// the frozen numeric policy: changing it is a breaking change to every
// downstream package.
const Epsilon = 1e-10

// Tolerance is the convergence threshold used by iterative projection
// algorithms built on top of this package (Dykstra cyclic projection and
// friends). Distinct from Epsilon because convergence checks operate on
// accumulated iterate movement, not raw component magnitudes.
const Tolerance = 1e-8
