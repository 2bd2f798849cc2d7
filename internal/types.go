package internal

import (
	"encoding/json"
)

// RawCard is one card record as returned by the upstream search API.
type RawCard map[string]any

type Rarity string

const (
	RarityNone     Rarity = "no_rarity"
	RarityCommon   Rarity = "common"
	RarityRare     Rarity = "rare"
	RarityVeryRare Rarity = "very_rare"
)

const (
	TypeMain  = "main"
	TypeHero  = "hero"
	TypeSpell = "spell"
)

const (
	ColorItem     = "item"
	ColorDarkGold = "dark_gold"
)

type CardStats struct {
	Attack *int `json:"attack,omitempty"`
	Armor  *int `json:"armor,omitempty"`
	Health *int `json:"health,omitempty"`
}

func (s CardStats) Present() bool {
	return s.Attack != nil || s.Armor != nil || s.Health != nil
}

type SpellKind int

const (
	SpellNone SpellKind = iota
	SpellCard
	SpellHeroPlaceholder
)

const HeroSpellPlaceholderName = "To be implemented"

// CardSpell encodes as {} for SpellNone and as {"name","image"} otherwise.
type CardSpell struct {
	Kind  SpellKind
	Name  string
	Image string
}

type spellJSON struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

func (s CardSpell) MarshalJSON() ([]byte, error) {
	if s.Kind == SpellNone {
		return []byte("{}"), nil
	}
	return json.Marshal(spellJSON{Name: &s.Name, Image: &s.Image})
}

func (s *CardSpell) UnmarshalJSON(data []byte) error {
	var raw spellJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = CardSpell{}
	if raw.Name == nil && raw.Image == nil {
		return nil
	}
	if raw.Name != nil {
		s.Name = *raw.Name
	}
	if raw.Image != nil {
		s.Image = *raw.Image
	}
	s.Kind = SpellCard
	if s.Name == HeroSpellPlaceholderName && s.Image == "" {
		s.Kind = SpellHeroPlaceholder
	}
	return nil
}

type CardAbility struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Card is the normalized record handed to display layers. Every key is
// always present in its JSON encoding.
type Card struct {
	Name        string        `json:"name"`
	Color       string        `json:"color"`
	Type        string        `json:"type"`
	Rarity      Rarity        `json:"rarity"`
	Icon        string        `json:"icon"`
	Image       string        `json:"image"`
	Stats       CardStats     `json:"stats"`
	Spell       CardSpell     `json:"spell"`
	Abilities   []CardAbility `json:"abilities"`
	Illustrator string        `json:"illustrator"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	type plain Card
	out := plain(c)
	if out.Abilities == nil {
		out.Abilities = []CardAbility{}
	}
	return json.Marshal(out)
}
