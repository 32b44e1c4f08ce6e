package crypto

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"
)

// ByteKey is the best single-byte XOR hypothesis found so far.
type ByteKey struct {
	Score     float64
	Key       byte
	Line      int
	Plaintext []byte
}

// KeySize is a repeating-key length hypothesis with its normalized
// Hamming distance.
type KeySize struct {
	Distance float64
	Size     int
}

func CrackXORByte(ct []byte) ByteKey {
	return CrackXORByteScored(ct, EnglishScorer)
}

// CrackXORByteScored tries every key byte and keeps the decoding with the
// strictly highest score, so the lowest key wins a tie. Decodings that are
// not valid UTF-8 are skipped.
func CrackXORByteScored(ct []byte, s Scorer) ByteKey {
	var best ByteKey
	var pt []byte
	for key := 0; key < 256; key++ {
		pt = XORByte(pt, ct, byte(key))
		if !utf8.Valid(pt) {
			continue
		}
		if score := s.Score(pt); score > best.Score {
			best = ByteKey{
				Score:     score,
				Key:       byte(key),
				Plaintext: append([]byte(nil), pt...),
			}
		}
	}
	return best
}

// CrackXORLines reads hex-encoded ciphertexts, one per line, and returns
// the best single-byte XOR decoding among all of them. Line is 1-based.
func CrackXORLines(r io.Reader) (ByteKey, error) {
	var best ByteKey
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		ct, err := hex.DecodeString(sc.Text())
		if err != nil {
			return ByteKey{}, fmt.Errorf("%w: line %d: %v", ErrEncoding, line, err)
		}
		if k := CrackXORByte(ct); k.Score > best.Score {
			k.Line = line
			best = k
		}
	}
	if err := sc.Err(); err != nil {
		return ByteKey{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return best, nil
}

// EstimateKeySize returns the key size in [minKeySize, maxKeySize] whose
// consecutive ciphertext chunks have the lowest mean normalized Hamming
// distance. The smallest size wins a tie. Sizes for which the ciphertext
// holds fewer than two chunks are not considered.
func EstimateKeySize(ct []byte, minKeySize, maxKeySize int) (int, error) {
	if minKeySize < 1 || maxKeySize < minKeySize {
		panic(fmt.Sprintf("invalid key size range [%d, %d]", minKeySize, maxKeySize))
	}
	if len(ct) < 2*minKeySize {
		return 0, fmt.Errorf("%w: ciphertext has length %d, need %d bytes (2x minimum key size)", ErrCiphertextTooShort, len(ct), 2*minKeySize)
	}

	best := KeySize{Size: minKeySize, Distance: -1}
	for sz := minKeySize; sz <= maxKeySize; sz++ {
		passes := len(ct)/sz - 1
		if passes < 1 {
			break
		}
		sum := 0
		for i := 0; i < passes; i++ {
			sum += HammingDistance(ct[i*sz:(i+1)*sz], ct[(i+1)*sz:(i+2)*sz])
		}
		dist := float64(sum) / float64(passes*sz)
		if best.Distance < 0 || dist < best.Distance {
			best = KeySize{Size: sz, Distance: dist}
		}
	}
	return best.Size, nil
}

// BreakColumns transposes ct into keySize columns, one per key byte, and
// cracks each column as single-byte XOR.
func BreakColumns(ct []byte, keySize int) []byte {
	return BreakColumnsScored(ct, keySize, EnglishScorer)
}

func BreakColumnsScored(ct []byte, keySize int, s Scorer) []byte {
	transpose := make([][]byte, keySize)
	for i, b := range ct {
		k := i % keySize
		transpose[k] = append(transpose[k], b)
	}
	key := make([]byte, keySize)
	for i := range transpose {
		key[i] = CrackXORByteScored(transpose[i], s).Key
	}
	return key
}

func CrackXORRepeat(ct []byte, minKeySize, maxKeySize int) (key, pt []byte, err error) {
	keySize, err := EstimateKeySize(ct, minKeySize, maxKeySize)
	if err != nil {
		return nil, nil, err
	}
	key = BreakColumns(ct, keySize)
	pt = XORRepeat(nil, ct, key)
	return key, pt, nil
}
