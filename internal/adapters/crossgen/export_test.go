// export_test.go exports private functions for white-box testing.
package crossgen

// Exports of the private probing and version helpers for testing.
var (
	JITName           = jitName
	SymbolWriterNames = symbolWriterNames
	FallbackChain     = fallbackChain
	ParseVersion      = parseVersion
)
