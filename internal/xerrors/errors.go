// Package xerrors re-exports github.com/cockroachdb/errors for namematch.
//
// This gives every package in the module:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to CLI users
//   - Is/As-compatible sentinel checks
//
// Usage:
//
//	err := xerrors.New("reference data directory not found")
//	return xerrors.WithHint(err, "pass --refdata pointing at a directory with _ipa_all_names.json")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package xerrors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

var (
	WithHint        = crdb.WithHint
	WithHintf       = crdb.WithHintf
	WithDetail      = crdb.WithDetail
	WithDetailf     = crdb.WithDetailf
	WithSafeDetails = crdb.WithSafeDetails
)

var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// GetStack returns the reportable stack trace carried on err, if any.
var GetStack = crdb.GetReportableStackTrace
