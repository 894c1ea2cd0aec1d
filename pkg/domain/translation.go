package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Direction selects which way a translation goes.
type Direction string

const (
	// ToMorse encodes plain text into a Morse stream.
	ToMorse Direction = "english_to_morse"
	// ToEnglish decodes a Morse stream into plain text.
	ToEnglish Direction = "morse_to_english"
)

// ParseDirection accepts the canonical names and the short aliases used on
// the command line and in the live protocol.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ToMorse), "encode", "english", "text":
		return ToMorse, nil
	case string(ToEnglish), "decode", "morse":
		return ToEnglish, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == ToMorse {
		return ToEnglish
	}
	return ToMorse
}

// Translation is the result of one transcoder call.
type Translation struct {
	Direction Direction `json:"direction"`
	Alphabet  string    `json:"alphabet"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Words     int       `json:"words"`
	Letters   int       `json:"letters"`
	// Dropped is only filled in when the transcoder runs with diagnostics.
	Dropped int  `json:"dropped,omitempty"`
	Cached  bool `json:"cached"`
}

// CacheKey derives a stable key for a translation request. The alphabet
// fingerprint keeps tables that share a name apart. Inputs are hashed so
// that keys stay short regardless of the text size.
func CacheKey(alphabet, fingerprint string, dir Direction, input string) string {
	sum := sha256.Sum256([]byte(input))
	return alphabet + ":" + fingerprint + ":" + string(dir) + ":" + hex.EncodeToString(sum[:])
}
