package crypto

import "math/bits"

// A Scorer rates how plausible a candidate decoding is. Higher is better.
// Scores are only meaningful relative to other candidates of the same
// length.
type Scorer interface {
	Score(text []byte) float64
}

// ScoreFunc adapts an ordinary function to the Scorer interface.
type ScoreFunc func(text []byte) float64

func (f ScoreFunc) Score(text []byte) float64 { return f(text) }

// EnglishScorer rates text by English letter frequency plus a bonus for
// common digraphs.
var EnglishScorer Scorer = ScoreFunc(Score)

var charWeights = func() [256]float64 {
	var w [256]float64
	for c, f := range map[byte]float64{
		'E': 12.02, 'T': 9.10, 'A': 8.12, 'O': 7.68, 'I': 7.31, 'N': 6.95,
		'S': 6.28, 'R': 6.02, 'H': 5.92, 'D': 4.32, 'L': 3.98, 'U': 2.88,
		'C': 2.71, 'M': 2.61, 'F': 2.30, 'Y': 2.11, 'W': 2.09, 'G': 2.03,
		'P': 1.82, 'B': 1.49, 'V': 1.11, 'K': 0.69, 'X': 0.17, 'Q': 0.11,
		'J': 0.10, 'Z': 0.07,
	} {
		w[c] = f
		w[c+'a'-'A'] = f
	}
	w[' '] = 10
	for _, c := range []byte("-'\n/,.?!") {
		w[c] = 0.1
	}
	return w
}()

// digraphWeights holds bigram frequencies, weighted 4x relative to single
// letters. Keys are upper case.
var digraphWeights = map[[2]byte]float64{
	{'T', 'H'}: 3.88 * 4, {'H', 'E'}: 3.68 * 4, {'I', 'N'}: 2.28 * 4,
	{'E', 'R'}: 2.17 * 4, {'A', 'N'}: 2.14 * 4, {'R', 'E'}: 1.74 * 4,
	{'N', 'D'}: 1.57 * 4, {'O', 'N'}: 1.41 * 4, {'E', 'N'}: 1.38 * 4,
	{'A', 'T'}: 1.33 * 4, {'O', 'U'}: 1.28 * 4, {'E', 'D'}: 1.27 * 4,
	{'H', 'A'}: 1.27 * 4, {'T', 'O'}: 1.16 * 4, {'O', 'R'}: 1.15 * 4,
	{'I', 'T'}: 1.13 * 4, {'I', 'S'}: 1.10 * 4, {'H', 'I'}: 1.09 * 4,
	{'E', 'S'}: 1.09 * 4, {'N', 'G'}: 1.05 * 4,
}

func Score(text []byte) float64 {
	score := 0.
	for _, c := range text {
		score += charWeights[c]
	}
	for i := 0; i+1 < len(text); i++ {
		score += digraphWeights[[2]byte{upper(text[i]), upper(text[i+1])}]
	}
	return score
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// HammingDistance counts the differing bits of x and y. Only the common
// prefix is compared when the lengths differ.
func HammingDistance(x, y []byte) int {
	if len(y) < len(x) {
		x = x[:len(y)]
	}
	n := 0
	for i := range x {
		n += bits.OnesCount8(x[i] ^ y[i])
	}
	return n
}
