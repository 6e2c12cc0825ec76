// Package matrix provides the validated, immutable proximity matrix consumed
// by the filtering strategies.
//
// A proximity matrix is a symmetric N×N table of pairwise similarity weights
// between entities. New validates the raw table once — square shape, symmetry
// within a configurable epsilon, finite entries — so downstream construction
// loops never re-check and never observe NaN/Inf (the InvalidInput conditions
// fail fast, before any construction work begins). The diagonal is ignored:
// it is neither validated against a policy nor read by any operation.
//
// Scale controls (both optional):
//
//   - WithFloat32 stores entries in float32 backing, halving memory for large
//     N at the cost of ~7 significant digits of precision.
//   - Prefilter zeroes entries below a chosen percentile of the non-zero
//     upper-triangle weight distribution, shrinking the candidate edge set
//     for verification-based filtering.
//
// A Matrix never changes after New returns; all methods are safe for
// concurrent readers.
package matrix
