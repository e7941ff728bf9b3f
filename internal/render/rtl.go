package render

// isRTL reports whether r belongs to a right-to-left script range:
// Hebrew through Thaana/NKo/Samaritan plus Arabic and both Arabic
// presentation-forms blocks.
func isRTL(r rune) bool {
	return (r >= 0x0590 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// NeedsComposition reports whether text contains at least one
// right-to-left code point.
func NeedsComposition(text string) bool {
	for _, r := range text {
		if isRTL(r) {
			return true
		}
	}

	return false
}

// Compose reorders right-to-left runs for visually correct display in a
// left-to-right terminal that lacks bidi support. Runs containing an RTL
// code point are reversed in code-point order; spaces trailing such a run
// are peeled off first and re-appended after the reversal so boundary
// spacing stays put. Latin runs pass through unchanged.
//
// Compose is meant for interactive terminal rendering only; exported
// records keep the original logical order.
func Compose(text string) string {
	result := make([]rune, 0, len(text))
	run := make([]rune, 0, len(text))
	runHasRTL := false

	flush := func() {
		if runHasRTL {
			trailing := 0
			for len(run) > 0 && run[len(run)-1] == ' ' {
				run = run[:len(run)-1]
				trailing++
			}

			for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
				run[i], run[j] = run[j], run[i]
			}

			result = append(result, run...)
			for ; trailing > 0; trailing-- {
				result = append(result, ' ')
			}
		} else {
			result = append(result, run...)
		}

		run = run[:0]
		runHasRTL = false
	}

	for _, r := range text {
		switch {
		case isRTL(r):
			run = append(run, r)
			runHasRTL = true
		case r == ' ':
			// Spaces belong to whichever run they trail.
			run = append(run, r)
		default:
			flush()

			result = append(result, r)
		}
	}

	flush()

	return string(result)
}
