package fields

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// skipKeys are linking metadata or already shown as the entity title.
var skipKeys = map[string]struct{}{
	"url":      {},
	"key":      {},
	"resource": {},
	"document": {},
	"name":     {},
}

// PriorityOrder is the default reading order for well-known attributes.
var PriorityOrder = []string{
	"desc",
	"type",
	"category",
	"level",
	"hit_dice",
	"caster_type",
	"school",
	"casting_time",
	"range",
	"range_text",
	"duration",
	"verbal",
	"somatic",
	"material",
	"material_specified",
	"concentration",
	"ritual",
	"higher_level",
	"challenge_rating_text",
	"armor_class",
	"hit_points",
	"alignment",
	"ability_scores",
	"modifiers",
	"speed",
	"saving_throws",
	"saving_throws_all",
	"skill_bonuses",
	"skill_bonuses_all",
	"passive_perception",
	"senses",
	"languages",
	"prerequisite",
	"has_prerequisite",
	"is_subspecies",
	"subspecies_of",
	"is_magic_item",
	"rarity",
	"cost",
	"weight",
	"weight_unit",
	"weapon",
	"armor",
	"traits",
	"actions",
	"features",
	"benefits",
	"descriptions",
}

var priorityIndex = func() map[string]int {
	idx := make(map[string]int, len(PriorityOrder))
	for i, key := range PriorityOrder {
		idx[key] = i
	}
	return idx
}()

// cases.Caser and collate.Collator carry state and are not safe for
// concurrent use, so renders borrow them from pools.
var titleCaserPool = sync.Pool{
	New: func() any {
		caser := cases.Title(language.English, cases.NoLower)
		return &caser
	},
}

var collatorPool = sync.Pool{
	New: func() any {
		return collate.New(language.English)
	},
}

// ShouldSkip reports whether key is never rendered generically.
func ShouldSkip(key string) bool {
	_, ok := skipKeys[key]
	return ok
}

// IsEmpty reports whether value carries no information: null, "" or [].
func IsEmpty(value jsonv.Value) bool {
	switch v := value.(type) {
	case nil, jsonv.Null:
		return true
	case jsonv.String:
		return v == ""
	case jsonv.Array:
		return len(v) == 0
	default:
		return false
	}
}

// FormatLabel turns an attribute key into a display label:
// armor_class becomes "Armor Class". Only the first rune of each word
// changes, so 2nd_level becomes "2nd Level".
func FormatLabel(key string) string {
	caser := titleCaserPool.Get().(*cases.Caser)
	defer titleCaserPool.Put(caser)

	var b strings.Builder
	inWord := false
	for _, r := range strings.ReplaceAll(key, "_", " ") {
		wordRune := unicode.IsLetter(r) || unicode.IsDigit(r)
		if wordRune && !inWord {
			caser.Reset()
			b.WriteString(caser.String(string(r)))
		} else {
			b.WriteRune(r)
		}
		inWord = wordRune
	}
	return b.String()
}

// SortFields orders members by PriorityOrder. Unlisted keys follow all listed
// ones, in locale order. The sort is stable and the input is not modified.
func SortFields(members []jsonv.Member) []jsonv.Member {
	sorted := make([]jsonv.Member, len(members))
	copy(sorted, members)

	col := collatorPool.Get().(*collate.Collator)
	defer collatorPool.Put(col)

	sort.SliceStable(sorted, func(i, j int) bool {
		return lessKey(col, sorted[i].Key, sorted[j].Key)
	})
	return sorted
}

// SortKeys is SortFields for bare keys.
func SortKeys(keys []string) []string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)

	col := collatorPool.Get().(*collate.Collator)
	defer collatorPool.Put(col)

	sort.SliceStable(sorted, func(i, j int) bool {
		return lessKey(col, sorted[i], sorted[j])
	})
	return sorted
}

func lessKey(col *collate.Collator, a, b string) bool {
	ai, aListed := priorityIndex[a]
	bi, bListed := priorityIndex[b]
	switch {
	case aListed && bListed:
		return ai < bi
	case aListed:
		return true
	case bListed:
		return false
	default:
		return col.CompareString(a, b) < 0
	}
}

// Collect filters skipped and empty attributes, orders the rest and
// classifies each one.
func Collect(obj *jsonv.Object) []Field {
	kept := make([]jsonv.Member, 0, obj.Len())
	for _, m := range obj.Members() {
		if ShouldSkip(m.Key) || IsEmpty(m.Value) {
			continue
		}
		kept = append(kept, m)
	}

	sorted := SortFields(kept)
	out := make([]Field, 0, len(sorted))
	for _, m := range sorted {
		out = append(out, Field{Key: m.Key, Value: m.Value, Shape: Classify(m.Key, m.Value)})
	}
	return out
}
