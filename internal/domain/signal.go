package domain

// Source is a named, ordered list of signal symbols taken from one
// platform header.
type Source struct {
	// Name identifies the platform, e.g. "linux"
	Name string
	// Header is the system header the list was copied from
	Header string
	// Symbols are the full macro names in header order
	Symbols []string
}

// Entry is one row of the signal table
type Entry struct {
	// Short is the symbol with its "SIG" prefix removed; the table key
	Short string `json:"name"`
	// Symbol is the first full symbol that produced Short
	Symbol string `json:"symbol"`
	// Origins are the names of every source that contributed Short,
	// in first-seen order
	Origins []string `json:"sources"`
}

// HasOrigin reports whether the named source contributed this entry
func (e Entry) HasOrigin(name string) bool {
	for _, o := range e.Origins {
		if o == name {
			return true
		}
	}
	return false
}
