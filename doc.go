// Package goldtrack tracks the gram price of gold in Turkish lira and a
// personal buy/sell position against it. It is designed to be local-first:
// all state lives in a small string-keyed store the user controls.
//
// The core functionalities include:
//   - Price Resolution: an ordered list of rate source adapters is tried
//     until one succeeds; the troy-ounce quote is converted to a per-gram
//     TRY price and the last successful result is cached.
//   - Ledger Management: recording buy and sell transactions in an
//     append-only, chronological record, with weighted-average-cost
//     accounting producing realized profit and loss on every disposal.
//   - Valuation: combining the ledger state with the current (or last
//     cached) gram price into market value and unrealized profit and loss.
//   - Price Alarm: a persisted, edge-triggered threshold alarm that fires
//     a notification when the price crosses a target, at most once per
//     crossing.
//
// This package serves as the foundational logic for the `gtk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package goldtrack
