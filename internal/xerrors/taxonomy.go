package xerrors

// namematch raises exactly two fatal error taxonomies, both only at
// construction time. A per-call InvalidInput never reaches here: it is
// recovered into the "_" sentinel by the cleaner before any error path
// could observe it.

// ReferenceDataMissing wraps a failure to read or parse one of the six
// reference-data JSON files.
func ReferenceDataMissing(file string, cause error) error {
	err := Wrapf(cause, "reference data missing or unreadable: %s", file)
	return WithHintf(err, "check that %s exists and is valid JSON", file)
}

// InvalidRule wraps a rewrite rule with the wrong arity or a placeholder
// name absent from the expansion table.
func InvalidRule(file string, index int, cause error) error {
	err := Wrapf(cause, "invalid rule at index %d in %s", index, file)
	return WithHintf(err, "rules need exactly two placeholder/literal slots either side of the sandwich; check placeholder spelling against the expansion table")
}
