package services

import "strings"

// protocolPrefix is prepended to protocols by the public purchase flow; the
// same purchase may be stored with or without it depending on which system
// wrote the row.
const protocolPrefix = "EVE-"

// CandidateProtocols derives the ordered, deduplicated set of identifier
// variants a stored protocol may appear under: the input itself, the input
// with a leading "EVE-" stripped, and the stripped form re-prefixed. Empty or
// garbage input yields candidates that simply match nothing.
func CandidateProtocols(p string) []string {
	bare := strings.TrimPrefix(p, protocolPrefix)
	variants := []string{p, bare, protocolPrefix + bare}

	seen := make(map[string]struct{}, len(variants))
	candidates := make([]string, 0, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		candidates = append(candidates, v)
	}
	return candidates
}
