package chemkit

import (
	"strconv"
	"strings"
	"unicode"
)

// matchKind tags the predicate variant a formatRule evaluates.
type matchKind int

const (
	matchContains matchKind = iota
	matchPrefix
	matchFunc
)

// formatRule is one entry of the ordered rule table: a line predicate, an
// optional 1-based line pin, and the format it yields on match.
type formatRule struct {
	format  Format
	kind    matchKind
	needles []string // any-of, for matchContains and matchPrefix
	line    int      // 0 means any line
	fn      func(line string) bool
}

func (r *formatRule) matches(line string, lineNo int) bool {
	if r.line != 0 && r.line != lineNo {
		return false
	}
	switch r.kind {
	case matchContains:
		for _, needle := range r.needles {
			if strings.Contains(line, needle) {
				return true
			}
		}
	case matchPrefix:
		for _, needle := range r.needles {
			if strings.HasPrefix(line, needle) {
				return true
			}
		}
	case matchFunc:
		return r.fn(line)
	}
	return false
}

// formatRules is the rule table, in priority order. The order is a contract:
// predicates overlap (a degenerate line can satisfy both a CIF and a HIN
// rule), and the first match scanning lines 1..N, rules top to bottom, wins
// for the whole window. Do not reorder without corpus evidence.
//
// Substring rules apply to any line of the header window while the
// structural-table rules are pinned to line 4; the asymmetry is deliberate
// and mirrors real header conventions for these formats.
var formatRules = []formatRule{
	{format: FormatGaussian98, kind: matchContains, needles: []string{"Gaussian(R) 98", "Gaussian 98"}},
	{format: FormatGaussian03, kind: matchContains, needles: []string{"Gaussian(R) 03"}},
	{format: FormatGaussian95, kind: matchContains, needles: []string{"Gaussian 95"}},
	{format: FormatGaussian94, kind: matchContains, needles: []string{"Gaussian 94"}},
	{format: FormatGaussian92, kind: matchContains, needles: []string{"Gaussian 92"}},
	{format: FormatGaussian90, kind: matchContains, needles: []string{"Gaussian G90"}},
	{format: FormatGAMESS, kind: matchContains, needles: []string{"GAMESS"}},
	{format: FormatMDLMol, kind: matchContains, needles: []string{"v2000", "V2000"}, line: 4},
	{format: FormatMDLMolV3000, kind: matchContains, needles: []string{"v3000", "V3000"}, line: 4},
	{format: FormatMDLMol, kind: matchPrefix, needles: []string{"M  END"}},
	{format: FormatMDLRXNV3000, kind: matchPrefix, needles: []string{"$RXN V3000"}},
	{format: FormatMDLRXN, kind: matchPrefix, needles: []string{"$RXN"}},
	{format: FormatRDF, kind: matchPrefix, needles: []string{"$RDFILE "}},
	{format: FormatAces2, kind: matchContains, needles: []string{"ACES2"}},
	{format: FormatMol2, kind: matchContains, needles: []string{"<TRIPOS>"}},
	{format: FormatADF, kind: matchContains, needles: []string{"Amsterdam Density Functional"}},
	{format: FormatDalton, kind: matchContains, needles: []string{"DALTON"}},
	{format: FormatJaguar, kind: matchContains, needles: []string{"Jaguar"}},
	{format: FormatMOPAC7, kind: matchContains, needles: []string{"MOPAC:  VERSION  7.00"}},
	{format: FormatMOPAC97, kind: matchContains, needles: []string{"MOPAC  97.00", "MOPAC2002"}},
	{format: FormatCAChe, kind: matchPrefix, needles: []string{"molstruct"}},
	{format: FormatVASP, kind: matchContains, needles: []string{"NCLASS="}},
	{format: FormatGhemical, kind: matchContains, needles: []string{"mm1gp"}},
	{format: FormatABINIT, kind: matchContains, needles: []string{"natom", "ABINIT"}},
	{format: FormatPDB, kind: matchPrefix, needles: []string{"HEADER", "HETATM ", "ATOM  "}},
	{format: FormatCML, kind: matchContains, needles: []string{"<atom", "<molecule", "<reaction", "<cml", "<bond"}},
	{format: FormatInChI, kind: matchContains, needles: []string{"<identifier"}},
	{format: FormatPMP, kind: matchPrefix, needles: []string{"%%Header Start"}},
	{format: FormatShelX, kind: matchPrefix, needles: []string{"ZERR ", "TITL "}},
	{format: FormatCIF, kind: matchPrefix, needles: []string{"_cell_length_a", "_audit_creation_date", "loop_"}},
	{format: FormatHIN, kind: matchPrefix, needles: []string{";", "forcefield", "sys", "view", "mol", "endmol"}},
	{format: FormatZMatrix, kind: matchContains, needles: []string{"Z Matrix"}, line: 4},
	{format: FormatMDLMol, kind: matchFunc, fn: looksLikeMDLCounts, line: 4},
}

// looksLikeMDLCounts recognizes a Molfile counts line: two fixed-width
// integer fields at columns [0,3) and [3,6) with nothing but digits and
// whitespace after them. Parse failures are non-matches, never errors.
func looksLikeMDLCounts(line string) bool {
	if len(line) <= 7 {
		return false
	}
	if _, err := strconv.Atoi(strings.TrimSpace(line[0:3])); err != nil {
		return false
	}
	if _, err := strconv.Atoi(strings.TrimSpace(line[3:6])); err != nil {
		return false
	}
	for _, c := range line[6:] {
		if !unicode.IsDigit(c) && !unicode.IsSpace(c) {
			return false
		}
	}
	return true
}

// classify scans the header window line by line. For each line the whole
// rule table is evaluated in order; the first satisfied rule decides the
// format for the entire window. Exhausting the window without a match
// returns FormatUndetermined, which signals the caller to run the fallback
// probes.
func classify(w *headerWindow) Format {
	for i, line := range w.lines {
		lineNo := i + 1
		for j := range formatRules {
			if formatRules[j].matches(line, lineNo) {
				return formatRules[j].format
			}
		}
	}
	return FormatUndetermined
}
