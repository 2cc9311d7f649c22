// Package errors provides structured errors with registered codes,
// categories, fix suggestions, and documentation links.
//
// Errors are created from a code registry:
//
//	return errors.New("E141").
//	    WithDetail("No morphic.json found in " + dir).
//	    WithSuggestion("Run 'morphic init' to create one")
//
// Formatted output is available for terminals (Format), logs
// (FormatCompact), and structured sinks (FormatJSON).
package errors
