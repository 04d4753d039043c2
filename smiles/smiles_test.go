package smiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		atoms int
		bonds int
	}{
		{"single atom", "C", 1, 0},
		{"ethanol", "CCO", 3, 2},
		{"chlorine atom", "Cl", 1, 0},
		{"bromoethane", "CCBr", 3, 2},
		{"nitrogen triple bond", "N#N", 2, 1},
		{"acetic acid", "CC(=O)O", 4, 3},
		{"benzene", "c1ccccc1", 6, 6},
		{"cyclohexane", "C1CCCCC1", 6, 6},
		{"pyrrole", "[nH]1cccc1", 5, 5},
		{"sodium chloride", "[Na+].[Cl-]", 2, 0},
		{"trans-butene", "C/C=C/C", 4, 3},
		{"isotope methane", "[13CH4]", 1, 0},
		{"percent ring closure", "C%10CCCCC%10", 6, 6},
		{"wildcard atom", "*", 1, 0},
		{"nested branches", "CC(C(C)C)C", 6, 5},
		{"explicit single bonds", "C-C-C", 3, 2},
		{"two components", "CC.OC", 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mol, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Len(t, mol.Atoms, tt.atoms)
			assert.Len(t, mol.Bonds, tt.bonds)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"free text", "methane"},
		{"pdb-like line", "HEADER    TEST"},
		{"whitespace", "C C"},
		{"leading digit", "1CC"},
		{"unclosed ring", "C1CC"},
		{"unclosed branch", "CC(C"},
		{"unmatched branch close", "CC)C"},
		{"dangling bond", "CC="},
		{"double bond symbol", "C==C"},
		{"bond before branch close", "C(C=)"},
		{"leading separator", ".CC"},
		{"separator after separator", "C..C"},
		{"separator after bond", "C=.C"},
		{"unknown element in bracket", "[Xx]"},
		{"unterminated bracket", "[CH4"},
		{"non-subset symbol outside bracket", "Fe"},
		{"lone bond", "-"},
		{"branch at start", "(CC)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mol, err := Parse(tt.in)
			assert.Nil(t, mol)
			require.Error(t, err)
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestParseAtomDetail(t *testing.T) {
	mol, err := Parse("[13C@H3+]")
	require.NoError(t, err)
	require.Len(t, mol.Atoms, 1)

	atom := mol.Atoms[0]
	assert.Equal(t, "C", atom.Symbol)
	assert.Equal(t, 13, atom.Isotope)
	assert.Equal(t, 3, atom.HCount)
	assert.Equal(t, 1, atom.Charge)
	assert.False(t, atom.Aromatic)

	mol, err = Parse("[O-2]")
	require.NoError(t, err)
	assert.Equal(t, -2, mol.Atoms[0].Charge)

	mol, err = Parse("[Ca++]")
	require.NoError(t, err)
	assert.Equal(t, 2, mol.Atoms[0].Charge)
}

func TestParseBondDetail(t *testing.T) {
	mol, err := Parse("C=C")
	require.NoError(t, err)
	require.Len(t, mol.Bonds, 1)
	assert.Equal(t, 2, mol.Bonds[0].Order)

	mol, err = Parse("C#N")
	require.NoError(t, err)
	assert.Equal(t, 3, mol.Bonds[0].Order)

	// Bonds between aromatic atoms are aromatic without an explicit bond
	// symbol.
	mol, err = Parse("cc")
	require.NoError(t, err)
	require.Len(t, mol.Bonds, 1)
	assert.True(t, mol.Bonds[0].Aromatic)
	assert.Equal(t, 1, mol.Bonds[0].Order)
}

func TestParseRingBonds(t *testing.T) {
	// The ring closure contributes the sixth bond of the ring.
	mol, err := Parse("C1CCCCC1")
	require.NoError(t, err)
	last := mol.Bonds[len(mol.Bonds)-1]
	assert.Equal(t, 0, last.From)
	assert.Equal(t, 5, last.To)

	// An explicit order at the opening carries to the closure bond.
	mol, err = Parse("C=1CCCCC=1")
	require.NoError(t, err)
	last = mol.Bonds[len(mol.Bonds)-1]
	assert.Equal(t, 2, last.Order)

	// Conflicting orders at opening and closing are rejected.
	_, err = Parse("C=1CCCCC#1")
	assert.Error(t, err)

	// A ring bond cannot close on its own atom.
	_, err = Parse("C11")
	assert.Error(t, err)
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("CC(C")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Pos)
	assert.Contains(t, perr.Error(), "position 4")
}
