package chemkit

import "sort"

// Format identifies a chemical file format recognized by the detector.
// The zero value, FormatUndetermined, means no format was recognized.
type Format string

// Known chemical file formats
const (
	FormatUndetermined Format = ""

	FormatABINIT      Format = "abinit"
	FormatAces2       Format = "aces2"
	FormatADF         Format = "adf"
	FormatCAChe       Format = "cache"
	FormatCIF         Format = "cif"
	FormatCML         Format = "cml"
	FormatDalton      Format = "dalton"
	FormatGAMESS      Format = "gamess"
	FormatGaussian90  Format = "gaussian90"
	FormatGaussian92  Format = "gaussian92"
	FormatGaussian94  Format = "gaussian94"
	FormatGaussian95  Format = "gaussian95"
	FormatGaussian98  Format = "gaussian98"
	FormatGaussian03  Format = "gaussian03"
	FormatGhemical    Format = "ghemical-mm"
	FormatHIN         Format = "hin"
	FormatInChI       Format = "inchi"
	FormatJaguar      Format = "jaguar"
	FormatMDLMol      Format = "mdl-mol"
	FormatMDLMolV3000 Format = "mdl-mol-v3000"
	FormatMDLRXN      Format = "mdl-rxn"
	FormatMDLRXNV3000 Format = "mdl-rxn-v3000"
	FormatMol2        Format = "mol2"
	FormatMOPAC7      Format = "mopac7"
	FormatMOPAC97     Format = "mopac97"
	FormatPDB         Format = "pdb"
	FormatPMP         Format = "pmp"
	FormatRDF         Format = "rdf"
	FormatShelX       Format = "shelx"
	FormatSMILES      Format = "smiles"
	FormatVASP        Format = "vasp"
	FormatXYZ         Format = "xyz"
	FormatZMatrix     Format = "zmatrix"
)

// formatNames maps each format to its display name.
var formatNames = map[Format]string{
	FormatABINIT:      "ABINIT output",
	FormatAces2:       "ACES II output",
	FormatADF:         "Amsterdam Density Functional output",
	FormatCAChe:       "CAChe MolStruct",
	FormatCIF:         "Crystallographic Information File",
	FormatCML:         "Chemical Markup Language",
	FormatDalton:      "DALTON output",
	FormatGAMESS:      "GAMESS log",
	FormatGaussian90:  "Gaussian 90 log",
	FormatGaussian92:  "Gaussian 92 log",
	FormatGaussian94:  "Gaussian 94 log",
	FormatGaussian95:  "Gaussian 95 log",
	FormatGaussian98:  "Gaussian 98 log",
	FormatGaussian03:  "Gaussian 03 log",
	FormatGhemical:    "Ghemical Molecular Mechanics",
	FormatHIN:         "HyperChem HIN",
	FormatInChI:       "IUPAC-NIST Chemical Identifier",
	FormatJaguar:      "Jaguar output",
	FormatMDLMol:      "MDL Molfile",
	FormatMDLMolV3000: "MDL Molfile V3000",
	FormatMDLRXN:      "MDL RXN",
	FormatMDLRXNV3000: "MDL RXN V3000",
	FormatMol2:        "Sybyl Mol2",
	FormatMOPAC7:      "MOPAC 7 output",
	FormatMOPAC97:     "MOPAC 97 output",
	FormatPDB:         "Protein Data Bank",
	FormatPMP:         "PolyMorph Predictor",
	FormatRDF:         "MDL RDFile",
	FormatShelX:       "ShelX",
	FormatSMILES:      "SMILES",
	FormatVASP:        "VASP output",
	FormatXYZ:         "XYZ coordinates",
	FormatZMatrix:     "Z-Matrix",
}

// String returns the format's short tag, or "undetermined" for the zero value.
func (f Format) String() string {
	if f == FormatUndetermined {
		return "undetermined"
	}
	return string(f)
}

// Name returns the format's human-readable display name.
func (f Format) Name() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return f.String()
}

// Known reports whether f is one of the formats the detector can recognize.
func (f Format) Known() bool {
	_, ok := formatNames[f]
	return ok
}

// Implemented reports whether a reader constructor is registered for f.
// A recognized format without a registered reader dispatches to a
// DummyReader; see RegisterReader.
func (f Format) Implemented() bool {
	return Implemented(f)
}

// Formats returns all recognizable formats, sorted by tag.
func Formats() []Format {
	formats := make([]Format, 0, len(formatNames))
	for f := range formatNames {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
