// Package domain defines the scenario input and projection output types for
// the valuation engine.
//
// Types in this package are pure value objects with no behavior beyond
// schedule lookups, normalization and validation. They are the shared
// language between the HTTP handlers, the scenario store and the calculator.
//
// Rules for this package:
//   - No imports from other internal/ packages except pkg/dateutil
//   - No http.Request, no context.Context in struct fields
//   - JSON tags are allowed (they're metadata, not behavior)
//   - Validation and default-filling methods are allowed (pure functions)
//   - Constants and enums belong here
package domain
