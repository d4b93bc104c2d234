package ic

//Reference atom-chain data for the standard amino acids, transcribed from
//the standard internal-coordinate hedra/dihedra tables. Each entry is a
//chain of bonded atom names: 3 atoms describe a bond angle (a hedron), 4
//atoms describe a dihedral, and a 4-atom chain with a trailing label names
//one of the standard sidechain torsions. Chains mentioning hydrogens, or
//any atom whose name contains the 'H' marker, are discarded when the
//coordinate table is built.

//backboneChains holds the atom chains common to every residue type.
var backboneChains = [][]string{
	{"N", "CA", "C", "O"},
	{"O", "C", "CA", "CB"},
	{"CA", "C", "O"},
	{"CB", "CA", "C"},
	{"CA", "C", "OXT"},
	{"N", "CA", "C", "OXT"},
	{"H", "N", "CA"},
	{"H", "N", "CA", "C"},
	{"N", "CA", "C"},
	{"HA", "CA", "C"},
}

//sidechainChains holds, for each standard amino acid by 1-letter code, the
//atom chains specific to its sidechain. Glycine and alanine have no heavy
//sidechain chains; their hydrogen chains live in sidechainExtras.
var sidechainChains = map[byte][][]string{
	'V': {
		{"CA", "CB", "CG1"},
		{"CA", "CB", "CG2"},
		{"N", "CA", "CB", "CG1", "chi1"},
	},
	'L': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD1"},
		{"CB", "CG", "CD2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD1", "chi2"},
	},
	'I': {
		{"CA", "CB", "CG1"},
		{"CA", "CB", "CG2"},
		{"CB", "CG1", "CD1"},
		{"N", "CA", "CB", "CG1", "chi1"},
		{"CA", "CB", "CG1", "CD1", "chi2"},
	},
	'M': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "SD"},
		{"CG", "SD", "CE"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "SD", "chi2"},
		{"CB", "CG", "SD", "CE", "chi3"},
	},
	'F': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD1"},
		{"CG", "CD1", "CE1"},
		{"CD1", "CE1", "CZ"},
		{"CE1", "CZ", "CE2"},
		{"CZ", "CE2", "CD2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD1", "chi2"},
	},
	'Y': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD1"},
		{"CG", "CD1", "CE1"},
		{"CD1", "CE1", "CZ"},
		{"CE1", "CZ", "CE2"},
		{"CZ", "CE2", "CD2"},
		{"CE1", "CZ", "OH"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD1", "chi2"},
	},
	'W': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD1"},
		{"CG", "CD1", "NE1"},
		{"CD1", "NE1", "CE2"},
		{"NE1", "CE2", "CD2"},
		{"CE2", "CD2", "CE3"},
		{"CD2", "CE3", "CZ3"},
		{"CE3", "CZ3", "CH2"},
		{"CZ3", "CH2", "CZ2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD1", "chi2"},
	},
	'S': {
		{"CA", "CB", "OG"},
		{"N", "CA", "CB", "OG", "chi1"},
	},
	'T': {
		{"CA", "CB", "OG1"},
		{"CA", "CB", "CG2"},
		{"N", "CA", "CB", "OG1", "chi1"},
	},
	'C': {
		{"CA", "CB", "SG"},
		{"N", "CA", "CB", "SG", "chi1"},
	},
	'P': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD"},
		{"CG", "CD", "N"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD", "chi2"},
	},
	'N': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "OD1"},
		{"CB", "CG", "ND2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "OD1", "chi2"},
	},
	'Q': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD"},
		{"CG", "CD", "OE1"},
		{"CG", "CD", "NE2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD", "chi2"},
		{"CB", "CG", "CD", "OE1", "chi3"},
	},
	'D': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "OD1"},
		{"CB", "CG", "OD2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "OD1", "chi2"},
	},
	'E': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD"},
		{"CG", "CD", "OE1"},
		{"CG", "CD", "OE2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD", "chi2"},
		{"CB", "CG", "CD", "OE1", "chi3"},
	},
	'K': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD"},
		{"CG", "CD", "CE"},
		{"CD", "CE", "NZ"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD", "chi2"},
		{"CB", "CG", "CD", "CE", "chi3"},
		{"CG", "CD", "CE", "NZ", "chi4"},
	},
	'R': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "CD"},
		{"CG", "CD", "NE"},
		{"CD", "NE", "CZ"},
		{"NE", "CZ", "NH1"},
		{"NE", "CZ", "NH2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "CD", "chi2"},
		{"CB", "CG", "CD", "NE", "chi3"},
		{"CG", "CD", "NE", "CZ", "chi4"},
		{"CD", "NE", "CZ", "NH1", "chi5"},
	},
	'H': {
		{"CA", "CB", "CG"},
		{"CB", "CG", "ND1"},
		{"CG", "ND1", "CE1"},
		{"ND1", "CE1", "NE2"},
		{"CE1", "NE2", "CD2"},
		{"N", "CA", "CB", "CG", "chi1"},
		{"CA", "CB", "CG", "ND1", "chi2"},
	},
	'G': {},
	'A': {},
}

//sidechainExtras holds supplementary chains merged into sidechainChains
//before the table is built, for the residue types whose main table would
//otherwise be empty. They are all hydrogen chains and so survive only
//until the marker filter.
var sidechainExtras = map[byte][][]string{
	'G': {
		{"C", "CA", "HA2"},
		{"C", "CA", "HA3"},
	},
	'A': {
		{"CA", "CB", "HB1"},
		{"CA", "CB", "HB2"},
		{"CA", "CB", "HB3"},
	},
}
