package calendar

// KerningTable holds the letter-spacing correction, in em, applied to
// two-digit day labels. Pairs containing a "1" are the loosest in the
// display face and get pulled in the most.
var KerningTable = map[int]float64{
	10: -0.06,
	11: -0.12,
	12: -0.07,
	13: -0.07,
	14: -0.09,
	15: -0.07,
	16: -0.07,
	17: -0.10,
	18: -0.07,
	19: -0.07,
	20: -0.02,
	21: -0.06,
	22: -0.01,
	23: -0.02,
	24: -0.04,
	25: -0.02,
	26: -0.02,
	27: -0.05,
	28: -0.02,
	29: -0.02,
	30: -0.02,
	31: -0.07,
}

// Kerning returns the letter-spacing for a day label, 0 when the table
// has no entry
func Kerning(day int) float64 {
	return KerningTable[day]
}
