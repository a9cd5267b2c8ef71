// Package domain implements the live scoreboard: the lifecycle of matches in
// progress and their ranking.
//
// # Matches
//
// A Match is identified by its ordered (home, away) team pair. It starts at
// 0-0, has its scores overwritten by updates, and leaves the scoreboard for
// good when finished. At most one match per ordered pair is live at a time;
// the reversed pair is a different match.
//
// # Ranking
//
// MatchesInProgressOrderedByScore ranks live matches by total score,
// highest first. Equal totals are broken by start order, most recent first,
// using a per-scoreboard sequence number. The ranking is a strict total
// order, so results are deterministic.
//
// # Errors
//
// Every rejected operation returns a structured error from
// internal/platform/errors and leaves the scoreboard unchanged. Callers can
// match the sentinels below with errors.Is.
package domain
