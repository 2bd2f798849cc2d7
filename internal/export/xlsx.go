package export

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"articraft/internal"
	"articraft/internal/util"
)

const (
	CardsSheet     = "Cards"
	AbilitiesSheet = "Abilities"
)

var cardHeaders = []string{
	"name", "color", "type", "rarity", "icon", "image",
	"attack", "armor", "health", "spell_name", "spell_image", "illustrator",
}

var abilityHeaders = []string{"card", "type", "name", "description", "image"}

// CardsToXLSX writes one row per card on the Cards sheet and one row per
// ability on the Abilities sheet.
func CardsToXLSX(cards []internal.Card, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), CardsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(AbilitiesSheet); err != nil {
		return err
	}

	writeRow(f, CardsSheet, 1, toAny(cardHeaders))
	writeRow(f, AbilitiesSheet, 1, toAny(abilityHeaders))

	abilityRow := 2
	for i, c := range cards {
		spellName, spellImage := "", ""
		if c.Spell.Kind != internal.SpellNone {
			spellName, spellImage = c.Spell.Name, c.Spell.Image
		}
		writeRow(f, CardsSheet, i+2, []any{
			c.Name, c.Color, c.Type, string(c.Rarity), c.Icon, c.Image,
			derefInt(c.Stats.Attack), derefInt(c.Stats.Armor), derefInt(c.Stats.Health),
			spellName, spellImage, c.Illustrator,
		})

		for _, a := range c.Abilities {
			writeRow(f, AbilitiesSheet, abilityRow, []any{
				c.Name, a.Type, a.Name, util.PlainText(a.Description), a.Image,
			})
			abilityRow++
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, value)
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
