// Package command interprets the lines submitted in command mode.
package command

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Prefix marks a line as a command.
const Prefix = "/"

const (
	Help  = "help"
	Clear = "clear"
)

// HelpText is returned for the help command.
const HelpText = "Available commands: /help, /clear"

// Names lists the recognised commands in display order.
func Names() []string {
	return []string{Help, Clear}
}

// Interpret returns the response for a submitted command line. A single
// leading slash is stripped when present. Matching is exact and
// case-sensitive; the clear command answers with an empty response.
func Interpret(text string) string {
	cmd := strings.TrimPrefix(text, Prefix)
	switch cmd {
	case Help:
		return HelpText
	case Clear:
		return ""
	default:
		return "Unknown command: " + cmd
	}
}

// Suggest returns the commands matching a partially typed line, best match
// first. An empty query matches every command.
func Suggest(text string) []string {
	query := strings.TrimPrefix(text, Prefix)
	names := Names()
	if query == "" {
		return names
	}
	if strings.ContainsAny(query, " \t") {
		return nil
	}
	ranks := fuzzy.RankFind(query, names)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, rank.Target)
	}
	return out
}
