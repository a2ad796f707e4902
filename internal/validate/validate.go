// Package validate runs consistency checks over a loaded game log. It is
// the replacement for the pile of one-off verification scripts: every
// check reads camps through the camp package, so the checks can never
// drift from the reports.
package validate

import (
	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
)

// Validate runs every check and returns the merged report.
func Validate(log *gamelog.Log) Report {
	var report Report

	report.Merge(checkChronology(log))
	for _, g := range log.Games {
		report.Merge(checkGame(g))
	}

	if len(report.Events) == 0 {
		report.Info("", "log is consistent: %d games checked", len(log.Games))
	}
	return report
}

// checkChronology flags games whose dates go backwards. The loader sorts,
// so this only fires on logs assembled in memory.
func checkChronology(log *gamelog.Log) Report {
	var report Report
	for i := 1; i < len(log.Games); i++ {
		prev, cur := log.Games[i-1], log.Games[i]
		if cur.Date.Before(prev.Date) {
			report.Error(cur.ID, "dated %s, before preceding game %s (%s)",
				cur.Date.Format(gamelog.DateLayout), prev.ID, prev.Date.Format(gamelog.DateLayout))
		}
	}
	return report
}

func checkGame(g gamelog.Game) Report {
	var report Report

	if g.DurationMinutes <= 0 {
		report.Error(g.ID, "non-positive duration %.1f minutes", g.DurationMinutes)
	}
	if len(g.Players) == 0 {
		report.Error(g.ID, "game has no players")
		return report
	}

	winner, winnerKnown := camp.WinnerCamp(g.WinnerCamp)
	if !winnerKnown {
		report.Error(g.ID, "unknown winner camp %q", g.WinnerCamp)
	}

	names := make(map[string]struct{}, len(g.Players))
	for _, p := range g.Players {
		if _, dup := names[p.Name]; dup {
			report.Error(g.ID, "player %q appears twice", p.Name)
		}
		names[p.Name] = struct{}{}
	}

	anyVictorious := false
	for _, p := range g.Players {
		report.Merge(checkPlayer(g, p, winner, winnerKnown, names))
		if p.Victorious {
			anyVictorious = true
		}
	}
	if winnerKnown && !anyVictorious {
		report.Error(g.ID, "winner camp %q has no victorious player", g.WinnerCamp)
	}

	return report
}

func checkPlayer(g gamelog.Game, p gamelog.PlayerRecord, winner camp.Camp, winnerKnown bool, roster map[string]struct{}) Report {
	var report Report

	if _, known := camp.Base(p.Role); !known {
		report.Warn(g.ID, "player %q has unrecognized role %q, counted as Villageois", p.Name, p.Role)
	}

	if winnerKnown {
		expected := camp.PlayerWon(p.Role, winner)
		if p.Victorious != expected {
			report.Error(g.ID, "player %q (%s) recorded victorious=%t but camp resolution says %t",
				p.Name, p.Role, p.Victorious, expected)
		}
	}

	// -1 is the recorded-as-missing sentinel; any other negative value is
	// corrupt data.
	if p.TalkSeconds != nil && *p.TalkSeconds < 0 && *p.TalkSeconds != -1 {
		report.Error(g.ID, "player %q has invalid talk time %.0fs", p.Name, *p.TalkSeconds)
	}
	if p.HasTalk() && g.DurationMinutes > 0 && *p.TalkSeconds > g.DurationMinutes*60 {
		report.Error(g.ID, "player %q talked %.0fs in a %.0fs game",
			p.Name, *p.TalkSeconds, g.DurationMinutes*60)
	}

	for _, target := range p.Votes {
		if target == "" {
			continue // abstention
		}
		if target == p.Name {
			report.Warn(g.ID, "player %q voted against themselves", p.Name)
			continue
		}
		if _, ok := roster[target]; !ok {
			report.Error(g.ID, "player %q voted against %q, who is not in the game", p.Name, target)
		}
	}

	return report
}
