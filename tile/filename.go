package tile

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
)

// Sync filenames obfuscate the decimal tile id: the first four
// characters are the leading hex characters of the MD5 of the id, the
// middle characters encode each decimal digit through digitMask and the
// last two re-encode the final two digits through suffixMask.
const (
	digitMask  = "olhwjsktri"
	suffixMask = "eizxdwknmo"

	prefixLen = 4
	suffixLen = 2
)

var digitValue = func() map[rune]int {
	m := make(map[rune]int, len(digitMask))
	for i, r := range digitMask {
		m[r] = i
	}
	return m
}()

// DecodeFilename recovers the numeric tile id hidden in a sync filename
// and returns it along with the tile's global grid position. A filename
// whose hash prefix or masked suffix does not match the recovered id is
// logged to logger but still decoded; a filename too short to carry an
// id, or containing characters outside the digit alphabet, is an error.
// A nil logger discards the warning.
//
// MD5 is used here as the application uses it: a consistency check on
// the filename, not a security boundary.
func DecodeFilename(name string, logger *log.Logger) (id, x, y int, err error) {
	if logger == nil {
		logger = discard
	}

	if len(name) <= prefixLen+suffixLen {
		return 0, 0, 0, fmt.Errorf("filename %q too short", name)
	}

	for _, c := range name[prefixLen : len(name)-suffixLen] {
		d, ok := digitValue[c]
		if !ok {
			return 0, 0, 0, fmt.Errorf("filename %q: invalid character %q", name, c)
		}
		id = id*10 + d
	}

	if name[:prefixLen] != hashPrefix(id) || name[len(name)-suffixLen:] != maskedSuffix(id) {
		logger.Printf("tile filename %s failed validation", name)
	}

	return id, id % MapWidth, id / MapWidth, nil
}

// EncodeFilename returns the sync filename the application would use
// for the given tile id. It is the exact inverse of DecodeFilename.
func EncodeFilename(id int) string {
	dec := strconv.Itoa(id)

	b := make([]byte, 0, prefixLen+len(dec)+suffixLen)
	b = append(b, hashPrefix(id)...)
	for _, c := range dec {
		b = append(b, digitMask[c-'0'])
	}
	b = append(b, maskedSuffix(id)...)

	return string(b)
}

func hashPrefix(id int) string {
	sum := md5.Sum([]byte(strconv.Itoa(id)))
	return hex.EncodeToString(sum[:])[:prefixLen]
}

func maskedSuffix(id int) string {
	dec := strconv.Itoa(id)
	if len(dec) > suffixLen {
		dec = dec[len(dec)-suffixLen:]
	}

	b := make([]byte, 0, suffixLen)
	for _, c := range dec {
		b = append(b, suffixMask[c-'0'])
	}
	return string(b)
}
