// Package credentials derives login credentials for farm workers. Usernames
// follow the pattern <first name>_<farm abbreviation><3-digit suffix>, where
// the suffix is the smallest positive number not already taken on that farm,
// so numbers freed by deleted workers get reused.
package credentials

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"unicode"
)

type Pair struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Generate computes a username and password for a new worker. existing must
// contain every username already assigned on the farm; usernames outside the
// computed prefix are ignored.
func Generate(fullName, farmName string, existing []string) (Pair, error) {
	first := firstToken(fullName)
	if first == "" {
		return Pair{}, errors.New("full name must contain at least one word")
	}

	abbr := abbreviate(farmName)
	if abbr == "" {
		return Pair{}, errors.New("farm name must contain at least one letter")
	}

	prefix := first + "_" + abbr
	suffix := smallestFreeSuffix(prefix, existing)

	return Pair{
		Username: fmt.Sprintf("%s%03d", prefix, suffix),
		Password: fmt.Sprintf("%s%d", first, 100000+rand.Intn(900000)),
	}, nil
}

// Prefix exposes the username prefix for a given worker and farm name.
// Worker edits use it to tell whether a rename leaves the existing username
// derived from a stale name.
func Prefix(fullName, farmName string) string {
	first := firstToken(fullName)
	abbr := abbreviate(farmName)
	if first == "" || abbr == "" {
		return ""
	}
	return first + "_" + abbr
}

func firstToken(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// abbreviate keeps only letters, lowercases them, and truncates to three
// characters. Shorter farm names yield shorter abbreviations.
func abbreviate(farmName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(farmName) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			if b.Len() >= 3 {
				break
			}
		}
	}
	return b.String()
}

// smallestFreeSuffix scans the assigned usernames for ones shaped like
// prefix+digits and returns the smallest positive number missing from that
// set, starting at 1. This reclaims numbers freed by prior deletions rather
// than always incrementing.
func smallestFreeSuffix(prefix string, existing []string) int {
	used := make(map[int]struct{}, len(existing))
	for _, name := range existing {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok || rest == "" || !allDigits(rest) {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			continue
		}
		used[n] = struct{}{}
	}

	suffix := 1
	for {
		if _, taken := used[suffix]; !taken {
			return suffix
		}
		suffix++
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
