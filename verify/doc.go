// SPDX-License-Identifier: MIT
//
// Package verify provides a contract-verification harness for the
// constraint-projection engine: given a (current, delta, constraints)
// triple and the suggest.Response it produced, it re-checks validity,
// determinism, termination, and diff monotonicity independently of the
// code path that produced the response.
//
// This mirrors a two-stage verification split: a fast static pass over
// the already-produced Response (Validity: every suggestion satisfies
// every constraint; Monotonicity: reapplying each suggestion's recorded
// diff to its requested point reconstructs the delivered point), and a
// functional re-simulation pass that re-runs the pipeline to check
// Determinism and Termination against a wall-clock budget. VerifyContract
// exposes the static pass on its own for callers that already have a
// Response and an elapsed_us reading; Harness.Run runs both passes from
// scratch. Neither stage mutates the inputs; both report a list of
// ContractViolation records rather than failing fast, so a single call
// surfaces every violation at once.
package verify
