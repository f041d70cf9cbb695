// Package errors provides structured error handling for matchquery.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Wire format errors
//   - 3XX: Field resolution errors
//   - 4XX: Analysis errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration invariant violations.
	CategoryConfig Category = "CONFIG"
	// CategoryWire indicates wire encoding/decoding errors.
	CategoryWire Category = "WIRE"
	// CategoryField indicates field query construction errors.
	CategoryField Category = "FIELD"
	// CategoryAnalysis indicates analyzer resolution errors.
	CategoryAnalysis Category = "ANALYSIS"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigInvalid = "ERR_101_CONFIG_INVALID"

	// Wire errors (200-299)
	ErrCodeUnknownVariant = "ERR_201_UNKNOWN_VARIANT"
	ErrCodeWireTruncated  = "ERR_202_WIRE_TRUNCATED"

	// Field errors (300-399)
	ErrCodeFieldResolution = "ERR_301_FIELD_RESOLUTION"

	// Analysis errors (400-499)
	ErrCodeAnalyzerNotFound = "ERR_401_ANALYZER_NOT_FOUND"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts the category from an error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryWire
	case '3':
		return CategoryField
	case '4':
		return CategoryAnalysis
	default:
		return CategoryInternal
	}
}
