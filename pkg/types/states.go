package domain

import "slices"

// stateCodes is the fixed enumeration of state-of-residence codes accepted
// on a profile. Sorted alphabetically; FC is the Federal Capital Territory.
var stateCodes = []string{
	"AB", "AD", "AK", "AN", "BA", "BE", "BO", "BY", "CR", "DE",
	"EB", "ED", "EK", "EN", "FC", "GO", "IM", "JI", "KD", "KE",
	"KN", "KO", "KT", "KW", "LA", "NA", "NI", "OG", "ON", "OS",
	"OY", "PL", "RI", "SO", "TA", "YO", "ZA",
}

// ValidState reports whether code is a member of the state enumeration.
func ValidState(code string) bool {
	return slices.Contains(stateCodes, code)
}

// StateCodes returns the accepted state-of-residence codes.
func StateCodes() []string {
	return slices.Clone(stateCodes)
}
