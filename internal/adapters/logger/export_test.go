// export_test.go exports private functions for white-box testing.
package logger

// Exported error formatting functions.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
