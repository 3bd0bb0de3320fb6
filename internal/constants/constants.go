// Package constants provides shared default values used across sigtab.
package constants

// Symbol handling
const (
	// SymbolPrefix is stripped from the start of a symbol to form its short name
	SymbolPrefix = "SIG"
)

// Rendering defaults
const (
	// DefaultRegisterCall is the C macro each registration line invokes
	DefaultRegisterCall = "lstate_num2tbl"

	// DefaultHandle is the lua_State argument passed to the register call
	DefaultHandle = "L"

	// DefaultIndent prefixes every registration line
	DefaultIndent = "    "
)

// Splice defaults
const (
	// DefaultMarker is the template line replaced by the generated table
	DefaultMarker = "#define GEN_SIGNO_DECL"

	// StdioPath selects stdout as splice output
	StdioPath = "-"
)
