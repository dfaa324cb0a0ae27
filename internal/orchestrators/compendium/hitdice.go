package compendium

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// Limits on a rollable expression. Formulas outside them are rejected
// before anything is rolled.
const (
	MaxHitDiceCount    = 100
	MaxHitDieSize      = 100
	MaxHitDiceModifier = 1000
)

var (
	// Whole-string notation like "2d6", "6d10+12" or "6d10 - 1"
	hitDiceRegex = regexp.MustCompile(`^(\d+)\s*[dD]\s*(\d+)\s*(?:([+-])\s*(\d+))?$`)
	// The same notation embedded in text such as "45 (6d10 + 12)"
	embeddedDiceRegex = regexp.MustCompile(`(\d+)\s*[dD]\s*(\d+)(?:\s*([+-])\s*(\d+))?`)
)

// HitDice is a parsed NdS+M expression
type HitDice struct {
	Count    int
	Size     int
	Modifier int
}

// String formats the expression the way stat blocks write it
func (h HitDice) String() string {
	switch {
	case h.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", h.Count, h.Size, h.Modifier)
	case h.Modifier < 0:
		return fmt.Sprintf("%dd%d-%d", h.Count, h.Size, -h.Modifier)
	default:
		return fmt.Sprintf("%dd%d", h.Count, h.Size)
	}
}

// Validate reports whether the expression is within the rollable limits
func (h HitDice) Validate() error {
	if h.Count < 1 || h.Count > MaxHitDiceCount {
		return errors.FailedPreconditionf("hit dice count %d must be between 1 and %d", h.Count, MaxHitDiceCount)
	}
	if h.Size < 1 || h.Size > MaxHitDieSize {
		return errors.FailedPreconditionf("hit die size %d must be between 1 and %d", h.Size, MaxHitDieSize)
	}
	if h.Modifier < -MaxHitDiceModifier || h.Modifier > MaxHitDiceModifier {
		return errors.FailedPreconditionf("hit dice modifier %d must be between %d and %d", h.Modifier, -MaxHitDiceModifier, MaxHitDiceModifier)
	}
	return nil
}

// ParseHitDice parses a whole-string dice expression
func ParseHitDice(notation string) (HitDice, bool) {
	return fromMatch(hitDiceRegex.FindStringSubmatch(strings.TrimSpace(notation)))
}

// FindHitDice looks for a creature's hit dice: first the hit_dice field,
// then a formula inside a hit_points string
func FindHitDice(data *jsonv.Object) (HitDice, bool) {
	if data == nil {
		return HitDice{}, false
	}

	if v, ok := data.Lookup("hit_dice"); ok {
		if s, ok := jsonv.AsString(v); ok {
			if hd, ok := ParseHitDice(s); ok {
				return hd, true
			}
		}
	}

	if v, ok := data.Lookup("hit_points"); ok {
		if s, ok := jsonv.AsString(v); ok {
			return fromMatch(embeddedDiceRegex.FindStringSubmatch(s))
		}
	}

	return HitDice{}, false
}

func fromMatch(m []string) (HitDice, bool) {
	if len(m) != 5 {
		return HitDice{}, false
	}

	count, err := strconv.Atoi(m[1])
	if err != nil || count <= 0 {
		return HitDice{}, false
	}
	size, err := strconv.Atoi(m[2])
	if err != nil || size <= 0 {
		return HitDice{}, false
	}

	hd := HitDice{Count: count, Size: size}
	if m[4] != "" {
		mod, err := strconv.Atoi(m[4])
		if err != nil {
			return HitDice{}, false
		}
		if m[3] == "-" {
			mod = -mod
		}
		hd.Modifier = mod
	}

	return hd, true
}
