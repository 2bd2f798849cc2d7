package catalog

import (
	"encoding/json"
	"fmt"
	"math"

	"articraft/internal"
)

const DefaultLimit = 5

// FieldMissingError reports a raw record field that is absent or unusable.
type FieldMissingError struct {
	Path string
	Want string
}

func (e *FieldMissingError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("card field missing: %s", e.Path)
	}
	return fmt.Sprintf("card field %s: expected %s", e.Path, e.Want)
}

// UnifyCardData normalizes up to limit records in order. The first record
// that fails aborts the whole batch; records past the limit are not read.
// A limit below 1 yields no cards; callers apply DefaultLimit themselves.
func UnifyCardData(data []internal.RawCard, limit int) ([]internal.Card, error) {
	n := max(min(len(data), limit), 0)
	cards := make([]internal.Card, 0, n)
	for _, raw := range data[:n] {
		card, err := UnifyCard(raw)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func UnifyCard(raw internal.RawCard) (internal.Card, error) {
	card := internal.Card{Abilities: []internal.CardAbility{}}
	rec := record{m: raw}

	cardType, err := resolveRawType(rec)
	if err != nil {
		return internal.Card{}, err
	}
	card.Type = cardType

	rarity, err := rec.get("rarity")
	if err != nil {
		return internal.Card{}, err
	}
	card.Rarity = rarityOf(rarity)

	if card.Name, err = rec.str("name"); err != nil {
		return internal.Card{}, err
	}
	colour, err := rec.str("colour")
	if err != nil {
		return internal.Card{}, err
	}
	card.Color = NormalizeColor(colour)

	images, err := rec.object("images")
	if err != nil {
		return internal.Card{}, err
	}
	if card.Icon, err = images.str("icon"); err != nil {
		return internal.Card{}, err
	}
	if card.Image, err = images.str("cardArt"); err != nil {
		return internal.Card{}, err
	}

	if rec.has("stats") {
		stats, err := toStats(rec)
		if err != nil {
			return internal.Card{}, err
		}
		card.Stats = stats
	}

	switch card.Type {
	case internal.TypeSpell:
		spellImage, err := images.str("card")
		if err != nil {
			return internal.Card{}, err
		}
		card.Spell = internal.CardSpell{Kind: internal.SpellCard, Name: card.Name, Image: spellImage}
	case internal.TypeHero:
		card.Spell = internal.CardSpell{Kind: internal.SpellHeroPlaceholder, Name: internal.HeroSpellPlaceholderName}
	}

	if rec.has("abilities") {
		abilities, err := toAbilities(rec)
		if err != nil {
			return internal.Card{}, err
		}
		card.Abilities = abilities
	}

	artist, err := rec.object("artist")
	if err != nil {
		return internal.Card{}, err
	}
	if card.Illustrator, err = artist.str("name"); err != nil {
		return internal.Card{}, err
	}

	return card, nil
}

// ResolveType flattens the upstream two-level taxonomy: generic "main"
// cards take their subtype, every other type is kept as is.
func ResolveType(rawType, subType string) string {
	if rawType == internal.TypeMain {
		return subType
	}
	return rawType
}

// RarityFromLevel maps the upstream rarity level. Anything outside 0..2,
// including negative and fractional levels, is very_rare.
func RarityFromLevel(level float64) internal.Rarity {
	switch level {
	case 0:
		return internal.RarityNone
	case 1:
		return internal.RarityCommon
	case 2:
		return internal.RarityRare
	default:
		return internal.RarityVeryRare
	}
}

// rarityOf never fails: a level that is not a number lands in the
// very_rare bucket like any other unknown level.
func rarityOf(v any) internal.Rarity {
	level, ok := toFloat(v)
	if !ok {
		return internal.RarityVeryRare
	}
	return RarityFromLevel(level)
}

func NormalizeColor(colour string) string {
	if colour == internal.ColorItem {
		return internal.ColorDarkGold
	}
	return colour
}

func resolveRawType(rec record) (string, error) {
	rawType, err := rec.str("type")
	if err != nil {
		return "", err
	}
	if rawType != internal.TypeMain {
		return rawType, nil
	}
	subType, err := rec.str("subType")
	if err != nil {
		return "", err
	}
	return ResolveType(rawType, subType), nil
}

func toStats(rec record) (internal.CardStats, error) {
	stats, err := rec.object("stats")
	if err != nil {
		return internal.CardStats{}, err
	}
	attack, err := stats.integer("attack")
	if err != nil {
		return internal.CardStats{}, err
	}
	armor, err := stats.integer("armour")
	if err != nil {
		return internal.CardStats{}, err
	}
	health, err := stats.integer("health")
	if err != nil {
		return internal.CardStats{}, err
	}
	return internal.CardStats{Attack: &attack, Armor: &armor, Health: &health}, nil
}

func toAbilities(rec record) ([]internal.CardAbility, error) {
	items, err := rec.list("abilities")
	if err != nil {
		return nil, err
	}
	out := make([]internal.CardAbility, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("abilities[%d]", i)
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &FieldMissingError{Path: rec.path(path), Want: "object"}
		}
		entry := record{m: m, prefix: rec.path(path)}

		var ability internal.CardAbility
		if ability.Type, err = entry.str("type"); err != nil {
			return nil, err
		}
		if ability.Name, err = entry.str("name"); err != nil {
			return nil, err
		}
		if ability.Description, err = entry.str("description"); err != nil {
			return nil, err
		}
		if ability.Image, err = entry.str("image"); err != nil {
			return nil, err
		}
		out = append(out, ability)
	}
	return out, nil
}

// record wraps a decoded JSON object and reports failed lookups with the
// dotted path from the card root.
type record struct {
	m      map[string]any
	prefix string
}

func (r record) path(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + "." + key
}

func (r record) has(key string) bool {
	_, ok := r.m[key]
	return ok
}

func (r record) get(key string) (any, error) {
	v, ok := r.m[key]
	if !ok {
		return nil, &FieldMissingError{Path: r.path(key)}
	}
	return v, nil
}

func (r record) str(key string) (string, error) {
	v, err := r.get(key)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldMissingError{Path: r.path(key), Want: "string"}
	}
	return s, nil
}

func (r record) integer(key string) (int, error) {
	v, err := r.get(key)
	if err != nil {
		return 0, err
	}
	i, ok := toInt(v)
	if !ok {
		return 0, &FieldMissingError{Path: r.path(key), Want: "integer"}
	}
	return i, nil
}

func (r record) object(key string) (record, error) {
	v, err := r.get(key)
	if err != nil {
		return record{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return record{}, &FieldMissingError{Path: r.path(key), Want: "object"}
	}
	return record{m: m, prefix: r.path(key)}, nil
}

func (r record) list(key string) ([]any, error) {
	v, err := r.get(key)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &FieldMissingError{Path: r.path(key), Want: "array"}
	}
	return arr, nil
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != math.Trunc(t) || t < math.MinInt || t >= math.MaxInt {
			return 0, false
		}
		return int(t), true
	case json.Number:
		i, err := t.Int64()
		return int(i), err == nil
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
