package caesar

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/caesar/internal/errors"
)

const (
	// AlphabetSize is the number of letters in the rotated alphabet.
	AlphabetSize = 26

	// MaxKey is the largest accepted shift. Keys are meant to be typed by a
	// human, so anything above six digits is rejected.
	MaxKey = 999_999
)

// Mode is the direction of the rotation.
type Mode int

const (
	// Encrypt shifts letters forward.
	Encrypt Mode = iota
	// Decrypt shifts letters backward.
	Decrypt
)

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "encrypt" or "decrypt" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	default:
		return Encrypt, fmt.Errorf("unknown mode %q", s)
	}
}

// KeyError reports a key outside [0, MaxKey].
type KeyError struct {
	Key int
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %d is out of range (must be between 0 and %d)", e.Key, MaxKey)
}

// Unwrap lets errors.Is match ErrKeyOutOfRange.
func (e *KeyError) Unwrap() error {
	return kerrors.ErrKeyOutOfRange
}

// ValidateKey returns a *KeyError if key cannot be used for a transform.
func ValidateKey(key int) error {
	if key < 0 || key > MaxKey {
		return &KeyError{Key: key}
	}
	return nil
}

// Rotate moves an alphabet position by shift places. The result is always in
// [0, AlphabetSize), for any shift including negative ones.
func Rotate(pos, shift int) int {
	return ((pos+shift)%AlphabetSize + AlphabetSize) % AlphabetSize
}

// Transform applies the cipher to every ASCII letter of input, keeping the
// letter's case. Everything else, including multi-byte UTF-8 sequences and
// invalid bytes, is copied through unchanged.
func Transform(input string, key int, mode Mode) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}

	shift := key % AlphabetSize
	if mode == Decrypt {
		shift = -shift
	}
	if shift == 0 {
		return input, nil
	}

	// ASCII bytes never occur inside a multi-byte UTF-8 sequence, so working
	// byte by byte leaves every non-ASCII character intact.
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		b.WriteByte(shiftByte(input[i], shift))
	}
	return b.String(), nil
}

func shiftByte(c byte, shift int) byte {
	switch {
	case 'a' <= c && c <= 'z':
		return 'a' + byte(Rotate(int(c-'a'), shift))
	case 'A' <= c && c <= 'Z':
		return 'A' + byte(Rotate(int(c-'A'), shift))
	default:
		return c
	}
}

// IsLetter reports whether c is rotated by Transform.
func IsLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// CountLetters returns how many characters of s Transform would rotate.
func CountLetters(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if IsLetter(s[i]) {
			n++
		}
	}
	return n
}
