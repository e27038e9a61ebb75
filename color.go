package todoist

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Color organizes projects, labels and filters. Each color has three
// interconvertible representations: a small integer ID (the wire format),
// a snake_case name, and a hex string. The palette is closed; parsing an
// unknown representation yields *UnknownColorError.
type Color uint8

// The color palette, numbered contiguously so the zero value is a valid
// color and default-constructed resources serialize as color 0.
const (
	ColorBerryRed Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorOliveGreen
	ColorLimeGreen
	ColorGreen
	ColorMintGreen
	ColorTeal
	ColorSkyBlue
	ColorLightBlue
	ColorBlue
	ColorGrape
	ColorViolet
	ColorLavender
	ColorMagenta
	ColorSalmon
	ColorCharcoal
	ColorGrey
	ColorTaupe

	numColors
)

var colorNames = [numColors]string{
	"berry_red", "red", "orange", "yellow", "olive_green",
	"lime_green", "green", "mint_green", "teal", "sky_blue",
	"light_blue", "blue", "grape", "violet", "lavender",
	"magenta", "salmon", "charcoal", "grey", "taupe",
}

var colorHex = [numColors]string{
	"#b8256f", "#db4035", "#ff9933", "#fad000", "#afb83b",
	"#7ecc49", "#299438", "#6accbc", "#158fad", "#14aaf5",
	"#96c3eb", "#4073ff", "#884dff", "#af38eb", "#eb96eb",
	"#e05194", "#ff8d85", "#808080", "#b8b8b8", "#ccac93",
}

// UnknownColorError reports a color ID, name or hex string outside the
// defined palette.
type UnknownColorError struct {
	ID   int
	Name string
}

func (e *UnknownColorError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("todoist: unknown color %q", e.Name)
	}

	return fmt.Sprintf("todoist: unknown color ID %d", e.ID)
}

// ColorFromID maps an integer color ID to a Color, failing cleanly on
// out-of-range input.
func ColorFromID(id int) (Color, error) {
	if id < 0 || id >= int(numColors) {
		return 0, &UnknownColorError{ID: id}
	}

	return Color(id), nil
}

// ParseColor maps a snake_case color name or a hex string to a Color.
func ParseColor(s string) (Color, error) {
	for i := range colorNames {
		if colorNames[i] == s || colorHex[i] == s {
			return Color(i), nil
		}
	}

	return 0, &UnknownColorError{Name: s}
}

// ID returns the color's integer ID, the canonical wire representation.
func (c Color) ID() int {
	return int(c)
}

// Name returns the color's snake_case name, or "" for an invalid value.
func (c Color) Name() string {
	if c >= numColors {
		return ""
	}

	return colorNames[c]
}

// Hex returns the color's hex string, or "" for an invalid value.
func (c Color) Hex() string {
	if c >= numColors {
		return ""
	}

	return colorHex[c]
}

func (c Color) String() string {
	return c.Name()
}

// MarshalJSON encodes the color as its integer ID.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalJSON accepts an integer ID (canonical) or, for compatibility
// with other protocol revisions, a name or hex string.
func (c *Color) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		parsed, err := ParseColor(s)
		if err != nil {
			return err
		}

		*c = parsed

		return nil
	}

	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}

	parsed, err := ColorFromID(id)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
