// Package snapimport turns user supplied holdings exports into clean snapshot
// rows and reconciles them with what is already known about an account.
//
// The package is organised as a small pipeline:
//   - Tokenizing: [SplitLine] splits one CSV line honouring quotes and
//     backslash escapes.
//   - Format inference: [FindHeaderRow] guesses which column holds which
//     [Field] from the header text, and [ValidateFormat] checks the guess
//     against the required field policy.
//   - Gap filling: [FillGaps] derives the missing member of the
//     units/price/value triple, and [CheckTypes] reports non numeric values.
//   - Import: [ParseFile] (or an [Importer]) runs the above over a whole file,
//     falling back to known provider layouts when no header is found.
//   - Attribution: [Attribute] computes per holding unit deltas against the
//     latest known holdings of an account, including disposals.
//   - Edits: [ResolveEdit] restores the value = units × price / 100 invariant
//     after a manual edit, or offers candidates when the edit is ambiguous.
//
// Numeric values are kept as the decimal strings the user typed. Derived
// values are computed with exact decimals and formatted to an explicit number
// of decimal places, never through floating point formatting.
//
// This package is the foundational logic for the `snap` command-line tool.
package snapimport
