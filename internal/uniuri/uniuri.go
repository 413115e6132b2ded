package uniuri

import (
	"crypto/rand"
	"path"
	"strings"
)

// StdLen gives ~82 bits of entropy with the lowercase charset.
const StdLen = 16

// Chars are lowercase so keys survive case insensitive file systems.
var Chars = []byte("abcdefghijklmnopqrstuvwxyz0123456789")

// New returns a random string of StdLen characters.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a random string of length characters from Chars.
func NewLen(length int) string {
	if length <= 0 {
		return ""
	}

	// bytes >= limit are dropped so every char is equally likely
	limit := 256 - (256 % len(Chars)) //nolint:mnd
	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2) //nolint:mnd

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, Chars[int(b)%len(Chars)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}

// Key returns dir/<random><ext> where ext is taken from filename, lowercased.
func Key(dir, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\ ") { //nolint:mnd
		ext = ""
	}

	return path.Join(dir, New()+ext)
}
