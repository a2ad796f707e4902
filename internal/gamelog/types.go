package gamelog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the calendar format used by the community game log.
const DateLayout = "2006-01-02"

// PlayerRecord is one player's line in a single game.
type PlayerRecord struct {
	Name string `json:"name"`
	// Role is the raw recorded French role label, e.g. "Loup", "Traître",
	// "Villageois Élite". Camp resolution happens downstream.
	Role string `json:"role"`
	// TalkSeconds is nil when the game has no talk-time recording.
	TalkSeconds *float64 `json:"talkSeconds,omitempty"`
	Victorious  bool     `json:"victorious"`
	// Votes holds the names this player voted against, one entry per day
	// phase, empty string for an abstention.
	Votes []string `json:"votes,omitempty"`
}

// HasTalk reports whether talk time was recorded for this player. Absent
// values and the -1 sentinel both mean no recording.
func (p PlayerRecord) HasTalk() bool {
	return p.TalkSeconds != nil && *p.TalkSeconds >= 0
}

// Game is a single recorded game.
type Game struct {
	ID              string
	Date            time.Time
	Map             string
	DurationMinutes float64
	// WinnerCamp is the raw recorded winner label ("Villageois", "Loup",
	// "Amoureux", ...).
	WinnerCamp string
	Players    []PlayerRecord
}

type gameJSON struct {
	ID              string         `json:"id"`
	Date            string         `json:"date"`
	Map             string         `json:"map,omitempty"`
	DurationMinutes float64        `json:"durationMinutes"`
	WinnerCamp      string         `json:"winnerCamp"`
	Players         []PlayerRecord `json:"players"`
}

// UnmarshalJSON decodes a game, parsing the date eagerly so malformed
// entries fail at load time rather than during aggregation.
func (g *Game) UnmarshalJSON(data []byte) error {
	var raw gameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(raw.Date))
	if err != nil {
		return fmt.Errorf("game %q: invalid date %q: %w", raw.ID, raw.Date, err)
	}

	g.ID = raw.ID
	g.Date = date
	g.Map = raw.Map
	g.DurationMinutes = raw.DurationMinutes
	g.WinnerCamp = raw.WinnerCamp
	g.Players = raw.Players
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (g Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(gameJSON{
		ID:              g.ID,
		Date:            g.Date.Format(DateLayout),
		Map:             g.Map,
		DurationMinutes: g.DurationMinutes,
		WinnerCamp:      g.WinnerCamp,
		Players:         g.Players,
	})
}

// Player returns the record of the named player, if present.
func (g Game) Player(name string) (PlayerRecord, bool) {
	for _, p := range g.Players {
		if p.Name == name {
			return p, true
		}
	}
	return PlayerRecord{}, false
}

// Log is a loaded game log. Games are ordered chronologically, ties
// keeping their input order.
type Log struct {
	Games []Game `json:"games"`
}

// Players returns the sorted roster of every player seen in the log.
func (l *Log) Players() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, g := range l.Games {
		for _, p := range g.Players {
			if _, ok := seen[p.Name]; ok {
				continue
			}
			seen[p.Name] = struct{}{}
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	return names
}

// GamesOf returns the chronological games the named player appears in.
func (l *Log) GamesOf(name string) []Game {
	var games []Game
	for _, g := range l.Games {
		if _, ok := g.Player(name); ok {
			games = append(games, g)
		}
	}
	return games
}

// DateRange returns the first and last game dates. ok is false for an
// empty log.
func (l *Log) DateRange() (first, last time.Time, ok bool) {
	if len(l.Games) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return l.Games[0].Date, l.Games[len(l.Games)-1].Date, true
}
