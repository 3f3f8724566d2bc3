// Package investments provides calculators for two unrelated personal-finance
// questions that share the same monthly-compounding arithmetic:
//
//   - Apartment buy-rent-sell: given a mortgage and a set of assumptions
//     (price growth, rent yield, market alternative), estimate the capital
//     invested, the capital realized at sale, and the average annual return.
//     Negative monthly cashflows are treated as foregone market investments
//     and charged against the final capital as an opportunity cost.
//   - Equity entry strategies: given a historical series of monthly closing
//     prices, compare a lump-sum entry against a staged dollar-cost-averaging
//     entry funded from a money-market holding, across every possible
//     historical start month.
//
// All computations are single-pass, deterministic float64 formulas over
// fixed-length sequences; the package holds no mutable state. Inputs are
// validated at construction and every operation either completes with a full
// result or fails outright.
//
// This package serves as the foundational logic for the `invest` command-line
// tool.
package investments
