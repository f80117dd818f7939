// Package dedupe collapses result lists to one profile per distinct
// identity.
package dedupe

import "github.com/jonathan/founder-scout/internal/types"

// Profiles returns the input with duplicate identities removed: the first
// occurrence of each name+company key wins and first-seen order is
// preserved. O(n), does not mutate the input.
//
// The key is a weak heuristic: two people sharing a display name and an
// employer string collide. Kept as-is because changing it would alter
// observable output.
func Profiles(profiles []*types.Profile) []*types.Profile {
	seen := make(map[string]struct{}, len(profiles))
	unique := make([]*types.Profile, 0, len(profiles))

	for _, profile := range profiles {
		key := profile.IdentityKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, profile)
	}

	return unique
}
