package ir

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

// hashSeed is the starting accumulator for itemHash.
const hashSeed uint32 = 5381

// groupSeparator joins the group label and the canonical record before
// hashing.
const groupSeparator = "|"

// itemHash is a multiply-by-33, xor-in rolling hash over UTF-16 code units,
// folded to 32 bits.
func itemHash(s string) uint32 {
	h := hashSeed
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*33 ^ uint32(unit)
	}
	return h
}

// ItemID computes the content-addressed ID for a record in a group.
// Rendered as lowercase hexadecimal without padding.
//
// Two records with the same group label and the same canonical content get
// the same ID. Editing a record in the dataset changes its ID, and with it
// the completion state remembered for it.
func ItemID(group string, record Value) (string, error) {
	canonical, err := MarshalCanonical(record)
	if err != nil {
		return "", fmt.Errorf("ItemID: failed to marshal: %w", err)
	}

	h := itemHash(group + groupSeparator + string(canonical))
	return strconv.FormatUint(uint64(h), 16), nil
}

// MustItemID is like ItemID but panics on error.
// Use only in tests or when the record is known to be valid.
func MustItemID(group string, record Value) string {
	id, err := ItemID(group, record)
	if err != nil {
		panic(err)
	}
	return id
}
