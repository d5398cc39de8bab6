package classify

import "strings"

// The 20 standard amino acids, one-letter codes.
const aminoAcids1 = "ACDEFGHIKLMNPQRSTVWY"

// Three-letter amino acid codes and their one-letter equivalents.
var aminoAcids3 = map[string]string{
	"ALA": "A", "ARG": "R", "ASN": "N", "ASP": "D", "CYS": "C",
	"GLN": "Q", "GLU": "E", "GLY": "G", "HIS": "H", "ILE": "I",
	"LEU": "L", "LYS": "K", "MET": "M", "PHE": "F", "PRO": "P",
	"SER": "S", "THR": "T", "TRP": "W", "TYR": "Y", "VAL": "V",
}

// DNA and RNA one-letter nucleotide codes.
const nucleotides = "ACGTU"

// IsAminoAcid reports whether r (uppercase) is a one-letter amino acid code.
func IsAminoAcid(r rune) bool {
	return strings.ContainsRune(aminoAcids1, r)
}

// IsNucleotide reports whether r (uppercase) is a recognized nucleotide code.
func IsNucleotide(r rune) bool {
	return strings.ContainsRune(nucleotides, r)
}

// ThreeToOne translates an uppercase three-letter amino acid code to its
// one-letter equivalent.
func ThreeToOne(code string) (string, bool) {
	one, ok := aminoAcids3[code]
	return one, ok
}

// Accepted returns the set of uppercase letters admitted by the requested
// flags: the union of one-letter amino acid codes, the individual letters
// appearing in three-letter codes, and nucleotide codes.
func Accepted(opt Options) map[rune]bool {
	set := make(map[rune]bool)
	if opt.AcceptProtein {
		for _, r := range aminoAcids1 {
			set[r] = true
		}
		for code := range aminoAcids3 {
			for _, r := range code {
				set[r] = true
			}
		}
	}
	if opt.AcceptDNA {
		for _, r := range nucleotides {
			set[r] = true
		}
	}
	return set
}
