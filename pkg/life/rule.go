package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule reports a malformed rule definition.
var ErrInvalidRule = errors.New("invalid rule")

// Rule describes a Life-family automaton as birth/survive neighbor-count
// masks. Bit n of each mask covers a Moore neighbor count of n, so only
// bits 0..8 are meaningful.
type Rule struct {
	birth   uint16
	survive uint16
}

// Conway is the classic B3/S23 rule: a dead cell is born at exactly 3 live
// neighbors, a live cell survives at 2 or 3, everything else dies. A count
// of 2 therefore leaves the cell unchanged, which falls out of the masks
// rather than being a branch of its own.
var Conway = Rule{birth: 1 << 3, survive: 1<<2 | 1<<3}

// NewRule builds a rule from explicit birth and survive neighbor counts.
func NewRule(birth, survive []int) (Rule, error) {
	var r Rule
	for _, n := range birth {
		if n < 0 || n > 8 {
			return Rule{}, fmt.Errorf("%w: birth count %d outside [0,8]", ErrInvalidRule, n)
		}
		r.birth |= 1 << n
	}
	for _, n := range survive {
		if n < 0 || n > 8 {
			return Rule{}, fmt.Errorf("%w: survive count %d outside [0,8]", ErrInvalidRule, n)
		}
		r.survive |= 1 << n
	}
	return r, nil
}

// ParseRule reads B/S notation such as "B3/S23".
func ParseRule(s string) (Rule, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q is not B<digits>/S<digits>", ErrInvalidRule, s)
	}
	birth, err := parseCounts(parts[0], "B")
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, s, err)
	}
	survive, err := parseCounts(parts[1], "S")
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, s, err)
	}
	return NewRule(birth, survive)
}

func parseCounts(part, prefix string) ([]int, error) {
	if !strings.HasPrefix(strings.ToUpper(part), prefix) {
		return nil, fmt.Errorf("missing %s prefix", prefix)
	}
	var counts []int
	for _, c := range part[1:] {
		if c < '0' || c > '8' {
			return nil, fmt.Errorf("bad neighbor count %q", c)
		}
		counts = append(counts, int(c-'0'))
	}
	return counts, nil
}

// Born reports whether a dead cell with n live neighbors becomes alive.
func (r Rule) Born(n int) bool { return n >= 0 && n <= 8 && r.birth&(1<<n) != 0 }

// Survives reports whether a live cell with n live neighbors stays alive.
func (r Rule) Survives(n int) bool { return n >= 0 && n <= 8 && r.survive&(1<<n) != 0 }

// Next returns the cell state for the following generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survives(neighbors)
	}
	return r.Born(neighbors)
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.birth&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.survive&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

var rules = map[string]Rule{}

// Register adds a rule under the provided name.
func Register(name string, r Rule) {
	if name == "" {
		return
	}
	rules[name] = r
}

// Rules exposes the registry of named rules.
func Rules() map[string]Rule {
	return rules
}

// RuleByName looks up a registered rule.
func RuleByName(name string) (Rule, bool) {
	r, ok := rules[name]
	return r, ok
}

func init() {
	Register("life", Conway)
	highlife, _ := NewRule([]int{3, 6}, []int{2, 3})
	Register("highlife", highlife)
	seeds, _ := NewRule([]int{2}, nil)
	Register("seeds", seeds)
	daynight, _ := NewRule([]int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8})
	Register("daynight", daynight)
}
