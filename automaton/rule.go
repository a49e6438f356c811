package automaton

import (
	"fmt"
	"strings"
)

// Rule is a totalistic birth/survival rule. Born and Survive are
// bitmasks over neighbor counts 0..8: bit n of Born set means a dead
// cell with n live neighbors turns alive.
type Rule struct {
	Born    uint16
	Survive uint16
}

// Life is Conway's B3/S23.
var Life = Rule{Born: 1 << 3, Survive: 1<<2 | 1<<3}

// HighLife is B36/S23, famous for its replicator.
var HighLife = Rule{Born: 1<<3 | 1<<6, Survive: 1<<2 | 1<<3}

// Seeds is B2/S, every live cell dies each generation.
var Seeds = Rule{Born: 1 << 2}

// ParseRule reads B/S notation such as "B3/S23" or "B36/S125".
func ParseRule(s string) (Rule, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("automaton: rule %q is not B.../S... notation", s)
	}
	born, err := parseDigits(parts[0], 'B')
	if err != nil {
		return Rule{}, err
	}
	survive, err := parseDigits(parts[1], 'S')
	if err != nil {
		return Rule{}, err
	}
	return Rule{Born: born, Survive: survive}, nil
}

func parseDigits(s string, prefix byte) (uint16, error) {
	if len(s) == 0 || (s[0] != prefix && s[0] != prefix+'a'-'A') {
		return 0, fmt.Errorf("automaton: rule part %q missing %c prefix", s, prefix)
	}
	var mask uint16
	for _, c := range s[1:] {
		if c < '0' || c > '8' {
			return 0, fmt.Errorf("automaton: neighbor count %q out of range 0-8", c)
		}
		mask |= 1 << (c - '0')
	}
	return mask, nil
}

// Next applies the rule to one cell.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survive&(1<<neighbors) != 0
	}
	return r.Born&(1<<neighbors) != 0
}

// String renders the rule back to B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.Born&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.Survive&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}
