package internal

import (
	"encoding/json"
	"testing"
)

func TestCardSpellJSON(t *testing.T) {
	cases := []struct {
		name  string
		spell CardSpell
		json  string
	}{
		{name: "none", spell: CardSpell{}, json: `{}`},
		{name: "card", spell: CardSpell{Kind: SpellCard, Name: "Bolt", Image: "S"}, json: `{"name":"Bolt","image":"S"}`},
		{name: "hero", spell: CardSpell{Kind: SpellHeroPlaceholder, Name: HeroSpellPlaceholderName}, json: `{"name":"To be implemented","image":""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blob, err := json.Marshal(tc.spell)
			if err != nil {
				t.Fatal(err)
			}
			if string(blob) != tc.json {
				t.Fatalf("got %s want %s", blob, tc.json)
			}
			var back CardSpell
			if err := json.Unmarshal(blob, &back); err != nil {
				t.Fatal(err)
			}
			if back != tc.spell {
				t.Fatalf("got %+v want %+v", back, tc.spell)
			}
		})
	}
}

func TestCardJSONNilAbilities(t *testing.T) {
	blob, err := json.Marshal(Card{Name: "Ogre"})
	if err != nil {
		t.Fatal(err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(blob, &keys); err != nil {
		t.Fatal(err)
	}
	if string(keys["abilities"]) != "[]" || string(keys["stats"]) != "{}" || string(keys["spell"]) != "{}" {
		t.Fatalf("unexpected encoding: %s", blob)
	}
}
