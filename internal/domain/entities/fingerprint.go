package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Line fingerprints are the identity used to match lines across FRC merges.
// They are derived from semantic attributes only, never from storage ids,
// so re-created rows keep the same fingerprint and a merge is a diff against
// a stable key space.

const fingerprintLen = 32

func fingerprint(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// FingerprintEstimateLine derives the stable identity of an estimate line.
func FingerprintEstimateLine(l EstimateLine) string {
	return fingerprint("est", l.Description, l.Category, l.PartType)
}

// FingerprintAdditionalLine derives the stable identity of an additional.
// Removal additionals bind the fingerprint of the estimate line they negate,
// so two removals of different lines never collide even when their own
// attributes match.
func FingerprintAdditionalLine(a AdditionalLine, removesFingerprint string) string {
	if a.Action == AdditionalActionRemove {
		return fingerprint("add", string(a.Action), a.Description, a.Category, a.PartType, "removes:"+removesFingerprint)
	}
	return fingerprint("add", string(a.Action), a.Description, a.Category, a.PartType)
}
