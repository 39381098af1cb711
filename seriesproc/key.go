// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesproc

import (
	"fmt"
	"strings"
)

// DefaultSep separates the primary and secondary categories of a
// compound label.
const DefaultSep = "_"

// A Key is the parsed form of a compound label. Two Keys are == if
// both of their categories are equal, so Keys can be used as map keys.
type Key struct {
	Primary   string
	Secondary string
}

// ParseKey splits label at the first occurrence of sep. If label does
// not contain sep, the whole label is the primary category and the
// secondary category is "".
func ParseKey(label, sep string) Key {
	if sep == "" {
		sep = DefaultSep
	}
	p, s, _ := strings.Cut(label, sep)
	return Key{p, s}
}

// String returns k as primary and secondary joined by DefaultSep, or
// just the primary category if there is no secondary.
func (k Key) String() string {
	if k.Secondary == "" {
		return k.Primary
	}
	return k.Primary + DefaultSep + k.Secondary
}

// A Match is a policy for deciding which records belong to a
// category.
type Match int

const (
	// MatchExact compares the parsed Key of each record.
	MatchExact Match = iota
	// MatchContains selects records whose whole label contains the
	// category name as a substring.
	MatchContains
)

var matchNames = []string{"exact", "contains"}

func (m Match) String() string {
	if int(m) < len(matchNames) {
		return matchNames[m]
	}
	return fmt.Sprintf("Match(%d)", int(m))
}

// ParseMatch parses the name of a Match.
func ParseMatch(s string) (Match, error) {
	for i, name := range matchNames {
		if s == name {
			return Match(i), nil
		}
	}
	return 0, fmt.Errorf("unknown match policy %q; want exact or contains", s)
}

// A Mode selects how series are formed and labeled for one chart
// variant.
type Mode int

const (
	// Combined draws every (primary, secondary) pair on one chart,
	// labeled "primary (secondary)".
	Combined Mode = iota
	// PerPrimary draws one chart per primary category with one
	// series per secondary category, labeled "secondary".
	PerPrimary
	// PrimaryOnly draws one series per primary category, labeled
	// "primary". This suits labels without a secondary category.
	PrimaryOnly
)

var modeNames = []string{"combined", "per-primary", "primary"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the name of a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q; want %s", s, strings.Join(modeNames, ", "))
}

// SeriesLabel returns the display label of the series for the given
// categories in the given mode.
func SeriesLabel(primary, secondary string, mode Mode) string {
	switch mode {
	case PerPrimary:
		return secondary
	case PrimaryOnly:
		return primary
	}
	if secondary == "" {
		return primary
	}
	return primary + " (" + secondary + ")"
}
