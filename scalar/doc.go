// Package scalar provides the small numeric vocabulary shared by every
// geometry package in lvlgeo: generic min/max/clamp helpers, linear
// interpolation, and tolerance-based float comparison.
//
// What:
//
//   - Min / Max / MinMax / Clamp over any ordered type.
//   - Abs over signed numbers, Lerp over floats.
//   - EqualWithin: |a-b| ≤ tol comparison used by all approximate checks.
//   - Documented tolerance defaults (DefaultEpsilon, DirectionTolerance).
//
// Why:
//
//   - One source of truth for numeric policy; no package re-declares its own
//     epsilon.
//   - Generic helpers avoid float32/float64 cast noise at call sites.
//
// Complexity: every function is O(1) and allocation-free.
package scalar
