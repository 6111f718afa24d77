package core

import (
	"strings"
)

// waterMass is the monoisotopic mass of H2O added once per chain.
const waterMass = 18.010565

// residueMass holds monoisotopic residue masses in Dalton.
var residueMass = map[rune]float64{
	'A': 71.03711, 'R': 156.10111, 'N': 114.04293, 'D': 115.02694,
	'C': 103.00919, 'E': 129.04259, 'Q': 128.05858, 'G': 57.02146,
	'H': 137.05891, 'I': 113.08406, 'L': 113.08406, 'K': 128.09496,
	'M': 131.04049, 'F': 147.06841, 'P': 97.05276, 'S': 87.03203,
	'T': 101.04768, 'W': 186.07931, 'Y': 163.06333, 'V': 99.06841,
	'U': 150.95364, 'O': 237.14773,
}

// UnmodifiedSequence strips modification annotations from a peptide string so
// that modified and unmodified forms of a peptide share one node.
// Bracketed and parenthesised annotations, whitespace and flanking residues
// written as "K.PEPTIDE.R" are removed.
//
// Complexity: O(|s|).
func UnmodifiedSequence(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for _, r := range s {
		switch {
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case depth > 0:
			// inside an annotation
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if n := len(out); n >= 4 && out[1] == '.' && out[n-2] == '.' {
		out = out[2 : n-2]
	}

	return out
}

// MonoisotopicWeight returns the monoisotopic mass of an unmodified chain.
// Residues without a known mass are ignored; an empty chain weighs 0.
func MonoisotopicWeight(seq string) float64 {
	var (
		sum   float64
		count int
	)
	for _, r := range strings.ToUpper(seq) {
		if m, ok := residueMass[r]; ok {
			sum += m
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return sum + waterMass
}
