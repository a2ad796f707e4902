// Package camp normalizes raw recorded roles into camp buckets and
// attributes wins. Every report in this repository resolves camps through
// this package; grouping variations are expressed as Options, never as
// local copies of the role tables.
package camp

import "strings"

// Camp is a normalized camp bucket.
type Camp string

const (
	Villageois Camp = "Villageois"
	Loup       Camp = "Loup"
	Traitre    Camp = "Traître"

	// Solo camps: each wins alone.
	Idiot        Camp = "Idiot du Village"
	Cannibale    Camp = "Cannibale"
	Agent        Camp = "Agent"
	Espion       Camp = "Espion"
	Scientifique Camp = "Scientifique"
	LaBete       Camp = "La Bête"
	Chasseur     Camp = "Chasseur de primes"
	Vaudou       Camp = "Vaudou"
	Zombie       Camp = "Zombie"
	Amoureux     Camp = "Amoureux"

	// Solo is the synthetic bucket all solo camps collapse into under
	// Options.GroupSolos.
	Solo Camp = "Solo"
)

// Options controls camp grouping. The zero value keeps every camp in its
// own bucket, with the Traître separate from the wolves.
type Options struct {
	// TraitorJoinsWolves buckets the Traître with the Loup camp.
	TraitorJoinsWolves bool
	// GroupSolos collapses every solo camp into the single Solo bucket.
	GroupSolos bool
}

// wolfRoles are roles that play and win with the wolves.
var wolfRoles = map[string]Camp{
	"Loup": Loup,
}

// villagerRoles are the village base role and its power variants. All of
// them normalize to Villageois.
var villagerRoles = map[string]struct{}{
	"Villageois":       {},
	"Villageois Élite": {},
	"Chasseur":         {},
	"Voyante":          {},
	"Garde":            {},
	"Alchimiste":       {},
	"Médium":           {},
	"Shérif":           {},
}

// soloRoles map raw solo role labels to their camp.
var soloRoles = map[string]Camp{
	"Idiot du Village":   Idiot,
	"Cannibale":          Cannibale,
	"Agent":              Agent,
	"Espion":             Espion,
	"Scientifique":       Scientifique,
	"La Bête":            LaBete,
	"Chasseur de primes": Chasseur,
	"Vaudou":             Vaudou,
	"Zombie":             Zombie,
	"Amoureux":           Amoureux,
}

// soloCamps is the canonical order of solo camps in reports.
var soloCamps = []Camp{
	Idiot, Cannibale, Agent, Espion, Scientifique,
	LaBete, Chasseur, Vaudou, Zombie, Amoureux,
}

// Base resolves a raw role label to its camp, ignoring grouping options.
// The second result is false for unrecognized labels, which fall back to
// Villageois so an aggregation pass never drops a player.
func Base(role string) (Camp, bool) {
	role = strings.TrimSpace(role)

	if c, ok := wolfRoles[role]; ok {
		return c, true
	}
	if role == string(Traitre) {
		return Traitre, true
	}
	if _, ok := villagerRoles[role]; ok {
		return Villageois, true
	}
	if c, ok := soloRoles[role]; ok {
		return c, true
	}
	return Villageois, false
}

// Resolve maps a raw role label to its bucket under opts. The second
// result mirrors Base: false means the label was not recognized.
func Resolve(role string, opts Options) (Camp, bool) {
	base, known := Base(role)

	if base == Traitre && opts.TraitorJoinsWolves {
		return Loup, known
	}
	if opts.GroupSolos && IsSolo(base) {
		return Solo, known
	}
	return base, known
}

// IsSolo reports whether c is one of the solo camps (or the synthetic
// Solo bucket itself).
func IsSolo(c Camp) bool {
	if c == Solo {
		return true
	}
	for _, s := range soloCamps {
		if c == s {
			return true
		}
	}
	return false
}

// WinnerCamp resolves a recorded winner label. Winner labels are camp
// names, so power variants never appear here.
func WinnerCamp(label string) (Camp, bool) {
	return Base(label)
}

// PlayerWon attributes a game outcome to a player from their raw role and
// the recorded winner camp. Attribution ignores grouping options: the
// Traître wins with the wolves even when bucketed separately, and a solo
// camp only wins its own game.
func PlayerWon(role string, winner Camp) bool {
	base, _ := Base(role)

	switch winner {
	case Loup:
		return base == Loup || base == Traitre
	case Villageois:
		return base == Villageois
	default:
		return base == winner
	}
}

// Buckets returns the ordered list of camp buckets that exist under opts.
// Reports iterate this instead of ranging over maps so output stays
// deterministic.
func Buckets(opts Options) []Camp {
	buckets := []Camp{Villageois, Loup}
	if !opts.TraitorJoinsWolves {
		buckets = append(buckets, Traitre)
	}
	if opts.GroupSolos {
		return append(buckets, Solo)
	}
	return append(buckets, soloCamps...)
}
