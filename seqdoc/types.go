package seqdoc

// Span is a half-open selection in logical coordinates: [Start, End).
// Start <= End in document order once normalized.
type Span struct {
	Start int
	End   int
}

func (s Span) IsEmpty() bool { return s.Start == s.End }

func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

func NormalizeSpan(s Span) Span {
	if s.Start <= s.End {
		return s
	}
	return Span{Start: s.End, End: s.Start}
}

// ClampSpan clamps both endpoints into [0, length].
func ClampSpan(s Span, length int) Span {
	return Span{
		Start: clampInt(s.Start, 0, length),
		End:   clampInt(s.End, 0, length),
	}
}

// Edit replaces the symbols in Span with a run built from Text.
type Edit struct {
	Span Span
	Text string
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
