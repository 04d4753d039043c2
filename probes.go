package chemkit

import (
	"strconv"
	"strings"

	"github.com/chemkit/chemkit/smiles"
)

// Fallback probes inspect only the first line of the header window, and
// only run when no line rule matched anywhere in the window. The numeric
// XYZ probe runs strictly before the trial SMILES parse.

// probeXYZ recognizes the first line of an XYZ coordinate file: a lone
// integer atom count, or an atom count followed by the "Bohr" unit marker.
func probeXYZ(line string) bool {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		_, err := strconv.Atoi(fields[0])
		return err == nil
	case 2:
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return false
		}
		return strings.EqualFold(fields[1], "Bohr")
	}
	return false
}

// probeSMILES attempts a trial structural parse of the line. Any molecule,
// even a degenerate single-atom one, counts; a parse failure is a
// non-match.
func probeSMILES(line string) bool {
	_, err := smiles.Parse(line)
	return err == nil
}

// runProbes applies the fallback probes to the window's first line.
func runProbes(line string) Format {
	if probeXYZ(line) {
		return FormatXYZ
	}
	if probeSMILES(line) {
		return FormatSMILES
	}
	return FormatUndetermined
}
