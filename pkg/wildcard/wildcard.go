// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package wildcard implements the shell-glob subset used to select server
// names for bulk removal:
//
//	*       any run of characters, including none
//	?       exactly one character
//	[abc]   one character from the class; ranges such as [a-z] are allowed
//	[!abc]  one character not in the class
//
// A ']' directly after '[' or '[!' is part of the class, and a '[' without
// a closing ']' is an ordinary character. Matching is case-sensitive and a
// pattern without special characters only matches the identical name.
package wildcard

import (
	"strings"
)

// specialChars are the characters that turn a name into a pattern.
const specialChars = "*?["

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentStar
	segmentQuestion
	segmentClass
)

type runeRange struct {
	lo, hi rune
}

type charClass struct {
	negated bool
	ranges  []runeRange
}

func (c *charClass) matches(r rune) bool {
	found := false
	for _, rr := range c.ranges {
		if rr.lo <= r && r <= rr.hi {
			found = true
			break
		}
	}
	return found != c.negated
}

// segment is one element of a compiled pattern. Exactly one of literal or
// class is meaningful, depending on kind.
type segment struct {
	kind    segmentKind
	literal []rune
	class   *charClass
}

// Pattern is a compiled wildcard pattern.
type Pattern struct {
	raw      string
	segments []segment
	wild     bool
}

// HasWildcard reports whether s contains any pattern character.
func HasWildcard(s string) bool {
	return strings.ContainsAny(s, specialChars)
}

// Compile parses pattern. Every string is a valid pattern.
func Compile(pattern string) *Pattern {
	p := &Pattern{raw: pattern, wild: HasWildcard(pattern)}
	if !p.wild {
		p.segments = []segment{{kind: segmentLiteral, literal: []rune(pattern)}}
		return p
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		switch runes[i] {
		case '*':
			// Consecutive stars are equivalent to one.
			if n := len(p.segments); n == 0 || p.segments[n-1].kind != segmentStar {
				p.segments = append(p.segments, segment{kind: segmentStar})
			}
			i++
		case '?':
			p.segments = append(p.segments, segment{kind: segmentQuestion})
			i++
		case '[':
			class, next, ok := parseClass(runes, i)
			if !ok {
				p.appendLiteral('[')
				i++
				continue
			}
			p.segments = append(p.segments, segment{kind: segmentClass, class: class})
			i = next
		default:
			p.appendLiteral(runes[i])
			i++
		}
	}
	return p
}

func (p *Pattern) appendLiteral(r rune) {
	if n := len(p.segments); n > 0 && p.segments[n-1].kind == segmentLiteral {
		p.segments[n-1].literal = append(p.segments[n-1].literal, r)
		return
	}
	p.segments = append(p.segments, segment{kind: segmentLiteral, literal: []rune{r}})
}

// parseClass parses the class starting at runes[start] == '['. It returns
// the index just past the closing ']' and false if the class is unterminated.
func parseClass(runes []rune, start int) (*charClass, int, bool) {
	i := start + 1
	class := &charClass{}
	if i < len(runes) && runes[i] == '!' {
		class.negated = true
		i++
	}

	body := i
	// A leading ']' is a member of the class, not its end.
	if i < len(runes) && runes[i] == ']' {
		i++
	}
	for i < len(runes) && runes[i] != ']' {
		i++
	}
	if i >= len(runes) {
		return nil, 0, false
	}

	members := runes[body:i]
	for j := 0; j < len(members); j++ {
		lo := members[j]
		if j+2 < len(members) && members[j+1] == '-' {
			hi := members[j+2]
			// An inverted range such as [z-a] matches nothing.
			if lo <= hi {
				class.ranges = append(class.ranges, runeRange{lo: lo, hi: hi})
			}
			j += 2
			continue
		}
		class.ranges = append(class.ranges, runeRange{lo: lo, hi: lo})
	}
	return class, i + 1, true
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.raw
}

// IsWildcard reports whether the pattern contains pattern characters.
func (p *Pattern) IsWildcard() bool {
	return p.wild
}

// Match reports whether name matches the pattern.
func (p *Pattern) Match(name string) bool {
	if !p.wild {
		return name == p.raw
	}
	return matchSegments(p.segments, []rune(name))
}

// matchSegments matches s against segments in O(len(segments)*len(s)).
// Every segment other than a star consumes a fixed number of runes, so on
// a mismatch it is enough to let the most recent star absorb one more rune
// and retry from the segment after it.
func matchSegments(segments []segment, s []rune) bool {
	si, ni := 0, 0
	starSeg, starName := -1, 0
	for si < len(segments) || ni < len(s) {
		if si < len(segments) {
			if segments[si].kind == segmentStar {
				starSeg, starName = si, ni
				si++
				continue
			}
			if n, ok := segments[si].matchAt(s, ni); ok {
				si++
				ni += n
				continue
			}
		}
		if starSeg < 0 || starName >= len(s) {
			return false
		}
		starName++
		si, ni = starSeg+1, starName
	}
	return true
}

// matchAt reports whether the segment matches s at index i and how many
// runes it consumes. It must not be called for a star.
func (seg segment) matchAt(s []rune, i int) (int, bool) {
	switch seg.kind {
	case segmentLiteral:
		if len(s)-i < len(seg.literal) {
			return 0, false
		}
		for j, r := range seg.literal {
			if s[i+j] != r {
				return 0, false
			}
		}
		return len(seg.literal), true
	case segmentQuestion:
		return 1, i < len(s)
	case segmentClass:
		return 1, i < len(s) && seg.class.matches(s[i])
	case segmentStar:
	}
	return 0, false
}

// Match reports whether name matches pattern.
func Match(name, pattern string) bool {
	return Compile(pattern).Match(name)
}

// Filter returns the items whose name matches pattern, in input order.
func Filter[T any](items []T, pattern string, name func(T) string) []T {
	p := Compile(pattern)
	var matched []T
	for _, item := range items {
		if p.Match(name(item)) {
			matched = append(matched, item)
		}
	}
	return matched
}
