package linestatus

// Colour is a display colour name for a status severity.
type Colour string

const (
	ColourGood    Colour = "green"
	ColourMinor   Colour = "amber"
	ColourSevere  Colour = "red"
	ColourClosed  Colour = "dark-red"
	ColourNeutral Colour = "grey"
)

// severityColours maps the API's integer severity codes (0-20) to display
// colours. Codes outside the table fall back to the neutral colour.
var severityColours = map[int]Colour{
	0:  ColourNeutral, // Special Service
	1:  ColourClosed,  // Closed
	2:  ColourClosed,  // Suspended
	3:  ColourSevere,  // Part Suspended
	4:  ColourClosed,  // Planned Closure
	5:  ColourSevere,  // Part Closure
	6:  ColourSevere,  // Severe Delays
	7:  ColourMinor,   // Reduced Service
	8:  ColourMinor,   // Bus Service
	9:  ColourMinor,   // Minor Delays
	10: ColourGood,    // Good Service
	11: ColourSevere,  // Part Closed
	12: ColourMinor,   // Exit Only
	13: ColourMinor,   // No Step Free Access
	14: ColourMinor,   // Change of Frequency
	15: ColourMinor,   // Diverted
	16: ColourClosed,  // Not Running
	17: ColourMinor,   // Issues Reported
	18: ColourGood,    // No Issues
	19: ColourNeutral, // Information
	20: ColourClosed,  // Service Closed
}

// SeverityColour returns the display colour for a severity code.
func SeverityColour(severity int) Colour {
	if c, ok := severityColours[severity]; ok {
		return c
	}
	return ColourNeutral
}
