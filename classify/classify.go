// Package classify turns arbitrary pasted text into parallel, independently
// validated biological interpretations: three-letter protein, one-letter
// protein, and nucleotide. Validation is alphabet membership and triplet
// well-formedness only; no further biological meaning is inferred.
package classify

import (
	"strings"
	"unicode"
)

// Kind labels what a committed interpretation means to the host.
type Kind string

const (
	KindProtein Kind = "protein"
	KindDNA     Kind = "dna"
	KindUnknown Kind = "unknown"
)

// Options selects which alphabets the input may be read against.
// At least one flag must be true.
type Options struct {
	AcceptProtein bool
	AcceptDNA     bool
}

// Unit is one annotated character of an interpretation.
type Unit struct {
	Text  string
	Valid bool
}

// Interpretation is one independently validated reading of the input.
type Interpretation struct {
	Kind Kind

	// CleanSequence holds only the characters that validated under this
	// interpretation. For the three-letter reading it is the one-letter
	// translation of the valid triplets.
	CleanSequence string
	InvalidCount  int
	Units         []Unit
}

// Result carries the display copy of the raw input plus up to three
// interpretations of its letters. Interpretations are independent and
// may overlap; nil means the corresponding flag was off.
type Result struct {
	// Display annotates every input character: Valid means membership in
	// the accepted alphabet union. Invalid characters stay visible here
	// but are excluded from Clean.
	Display             []Unit
	DisplayInvalidCount int

	// Clean is the uppercased input restricted to the accepted alphabet.
	Clean string

	ThreeLetterProtein *Interpretation
	OneLetterProtein   *Interpretation
	Nucleotide         *Interpretation
}

// Classify scans text case-insensitively against the alphabets enabled in
// opt and builds the enabled interpretations. Empty or fully-invalid input
// is not an error: it yields interpretations with empty clean sequences.
//
// Interpretations read every letter of the input, not just the accepted
// union: a letter outside every alphabet still occupies a position in each
// reading (and can leave a trailing non-triplet remainder), it is simply
// marked invalid there. Non-letters (whitespace, digits, punctuation) are
// excluded before interpretation.
func Classify(text string, opt Options) Result {
	accepted := Accepted(opt)

	var res Result
	var clean, letters strings.Builder
	for _, r := range text {
		up := unicode.ToUpper(r)
		ok := accepted[up]
		res.Display = append(res.Display, Unit{Text: string(r), Valid: ok})
		if ok {
			clean.WriteRune(up)
		} else {
			res.DisplayInvalidCount++
		}
		if unicode.IsLetter(up) {
			letters.WriteRune(up)
		}
	}
	res.Clean = clean.String()

	if opt.AcceptProtein {
		res.ThreeLetterProtein = interpretThreeLetter(letters.String())
		res.OneLetterProtein = interpretPerLetter(letters.String(), KindProtein, IsAminoAcid)
	}
	if opt.AcceptDNA {
		res.Nucleotide = interpretPerLetter(letters.String(), KindDNA, IsNucleotide)
	}
	return res
}

// interpretThreeLetter partitions letters into consecutive non-overlapping
// triplets. A matched triplet marks all three characters valid and
// contributes its one-letter translation; an unmatched triplet marks all
// three invalid. A trailing remainder shorter than 3 is entirely invalid.
func interpretThreeLetter(letters string) *Interpretation {
	in := &Interpretation{Kind: KindProtein}

	runes := []rune(letters)
	var out strings.Builder
	i := 0
	for ; i+3 <= len(runes); i += 3 {
		triplet := string(runes[i : i+3])
		one, ok := ThreeToOne(triplet)
		if ok {
			out.WriteString(one)
		} else {
			in.InvalidCount += 3
		}
		for _, r := range triplet {
			in.Units = append(in.Units, Unit{Text: string(r), Valid: ok})
		}
	}
	for ; i < len(runes); i++ {
		in.Units = append(in.Units, Unit{Text: string(runes[i]), Valid: false})
		in.InvalidCount++
	}

	in.CleanSequence = out.String()
	return in
}

func interpretPerLetter(letters string, kind Kind, valid func(rune) bool) *Interpretation {
	in := &Interpretation{Kind: kind}

	var out strings.Builder
	for _, r := range letters {
		ok := valid(r)
		in.Units = append(in.Units, Unit{Text: string(r), Valid: ok})
		if ok {
			out.WriteRune(r)
		} else {
			in.InvalidCount++
		}
	}

	in.CleanSequence = out.String()
	return in
}

// Interpretations returns the enabled interpretations in presentation
// order: three-letter protein, one-letter protein, nucleotide.
func (r Result) Interpretations() []*Interpretation {
	var out []*Interpretation
	if r.ThreeLetterProtein != nil {
		out = append(out, r.ThreeLetterProtein)
	}
	if r.OneLetterProtein != nil {
		out = append(out, r.OneLetterProtein)
	}
	if r.Nucleotide != nil {
		out = append(out, r.Nucleotide)
	}
	return out
}
