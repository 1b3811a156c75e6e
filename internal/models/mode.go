package models

// GameMode identifies a crucible activity type
type GameMode struct {
	// Code is the numeric mode identifier used by the fireteam service
	Code int

	// Name is the human-readable mode name accepted on the command line
	Name string
}

// UnknownModeCode is used when a mode name does not match any known mode
const UnknownModeCode = 0

// modes lists every known crucible mode
var modes = []GameMode{
	{Code: 523, Name: "Crimson Doubles"},
	{Code: 14, Name: "ToO"},
	{Code: 19, Name: "IB"},
	{Code: 10, Name: "Control"},
	{Code: 12, Name: "Clash"},
	{Code: 24, Name: "Rift"},
	{Code: 13, Name: "Rumble"},
	{Code: 23, Name: "Elimination"},
	{Code: 11, Name: "Salvage"},
	{Code: 15, Name: "Doubles"},
	{Code: 28, Name: "Zone Control"},
	{Code: 29, Name: "SRL"},
	{Code: 9, Name: "Skirmish"},
}

// Modes returns a copy of the known mode table
func Modes() []GameMode {
	out := make([]GameMode, len(modes))
	copy(out, modes)
	return out
}

// ModeByName looks up a mode by its exact name. Unknown names resolve to
// UnknownModeCode and keep the requested name.
func ModeByName(name string) GameMode {
	for _, mode := range modes {
		if mode.Name == name {
			return mode
		}
	}

	return GameMode{Code: UnknownModeCode, Name: name}
}

// Known reports whether the mode matched an entry in the mode table
func (m GameMode) Known() bool {
	return m.Code != UnknownModeCode
}
