package external

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// The SRD only publishes distances in feet
const distanceUnit = "feet"

func convertSpell(spell *entities.Spell) *Payload {
	data := jsonv.NewObject().
		Set("name", jsonv.String(spell.Name)).
		Set("key", jsonv.String(spell.Key)).
		Set("level", jsonv.Number(float64(spell.SpellLevel)))

	if spell.SpellSchool != nil {
		data.Set("school", jsonv.NewObject().Set("name", jsonv.String(spell.SpellSchool.Name)))
	}

	data.
		Set("casting_time", optionalString(spell.CastingTime)).
		Set("range", optionalString(spell.Range)).
		Set("duration", optionalString(spell.Duration)).
		Set("concentration", jsonv.Bool(spell.Concentration)).
		Set("ritual", jsonv.Bool(spell.Ritual))

	classes := jsonv.Array{}
	for _, class := range spell.SpellClasses {
		if class != nil {
			classes = append(classes, jsonv.NewObject().Set("name", jsonv.String(class.Name)))
		}
	}
	data.Set("classes", classes)

	if spell.SpellDamage != nil {
		damage := jsonv.NewObject()
		if spell.SpellDamage.SpellDamageType != nil {
			damage.Set("damage_type", jsonv.String(spell.SpellDamage.SpellDamageType.Name))
		}
		if spell.SpellDamage.SpellDamageAtSlotLevel != nil {
			if base := baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel); base != "" {
				damage.Set("base_damage", jsonv.String(base))
			}
		}
		if damage.Len() > 0 {
			data.Set("damage", damage)
		}
	}

	if spell.DC != nil {
		dc := jsonv.NewObject()
		if spell.DC.DCType != nil {
			dc.Set("name", jsonv.String(spell.DC.DCType.Name))
		}
		if spell.DC.DCSuccess != "" {
			dc.Set("success", jsonv.String(spell.DC.DCSuccess))
		}
		data.Set("dc", dc)
	}

	if spell.AreaOfEffect != nil {
		data.Set("area_of_effect", jsonv.NewObject().
			Set("type", jsonv.String(spell.AreaOfEffect.Type)).
			Set("size", jsonv.Number(float64(spell.AreaOfEffect.Size))).
			Set("unit", jsonv.String(distanceUnit)))
	}

	data.Set("desc", jsonv.String(spellDescription(spell)))

	return &Payload{
		Key:        spell.Key,
		Name:       spell.Name,
		EntityType: ruleset.EntityTypeSpell,
		Data:       data,
	}
}

// spellDescription summarises a spell as markdown. The SRD client does not
// expose the rules text itself.
func spellDescription(spell *entities.Spell) string {
	var b strings.Builder

	level := "Cantrip"
	if spell.SpellLevel > 0 {
		level = fmt.Sprintf("Level %d", spell.SpellLevel)
	}
	school := "Unknown School"
	if spell.SpellSchool != nil {
		school = spell.SpellSchool.Name
	}
	fmt.Fprintf(&b, "**%s %s spell**\n", level, school)

	var properties []string
	if spell.Ritual {
		properties = append(properties, "Ritual")
	}
	if spell.Concentration {
		properties = append(properties, "Concentration")
	}
	if len(properties) > 0 {
		fmt.Fprintf(&b, "*%s*\n", strings.Join(properties, ", "))
	}

	if spell.DC != nil && spell.DC.DCType != nil {
		save := fmt.Sprintf("Targets make a **%s** saving throw", spell.DC.DCType.Name)
		if spell.DC.DCSuccess != "" {
			save += fmt.Sprintf(" (%s on success)", spell.DC.DCSuccess)
		}
		b.WriteString(save + ".\n")
	}

	if spell.SpellDamage != nil && spell.SpellDamage.SpellDamageAtSlotLevel != nil {
		rows := slotDamageRows(spell.SpellDamage.SpellDamageAtSlotLevel)
		if len(rows) > 0 {
			b.WriteString("\n## Damage by Slot Level\n")
			b.WriteString("| Slot | Damage |\n")
			b.WriteString("|---|---|\n")
			for _, row := range rows {
				fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func slotDamageRows(d *entities.SpellDamageAtSlotLevel) [][2]string {
	slots := []string{
		d.FirstLevel, d.SecondLevel, d.ThirdLevel,
		d.FourthLevel, d.FifthLevel, d.SixthLevel,
		d.SeventhLevel, d.EighthLevel, d.NinthLevel,
	}

	var rows [][2]string
	for i, dmg := range slots {
		if dmg != "" {
			rows = append(rows, [2]string{fmt.Sprintf("%d", i+1), dmg})
		}
	}
	return rows
}

// baseDamage returns the damage at the spell's lowest castable slot
func baseDamage(level int, d *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return d.FirstLevel
	case 2:
		return d.SecondLevel
	case 3:
		return d.ThirdLevel
	case 4:
		return d.FourthLevel
	case 5:
		return d.FifthLevel
	case 6:
		return d.SixthLevel
	case 7:
		return d.SeventhLevel
	case 8:
		return d.EighthLevel
	case 9:
		return d.NinthLevel
	default:
		return ""
	}
}

func convertEquipment(equipment dnd5e.EquipmentInterface) *Payload {
	if equipment == nil {
		return nil
	}

	payload := &Payload{EntityType: equipmentType(equipment.GetType())}
	data := jsonv.NewObject()

	switch eq := equipment.(type) {
	case *entities.Weapon:
		if eq == nil {
			return nil
		}
		payload.Key, payload.Name = eq.Key, eq.Name
		data.
			Set("name", jsonv.String(eq.Name)).
			Set("key", jsonv.String(eq.Key)).
			Set("equipment_category", reference(eq.EquipmentCategory)).
			Set("weapon_category", optionalString(eq.WeaponCategory)).
			Set("weapon_range", optionalString(eq.WeaponRange)).
			Set("cost", cost(eq.Cost)).
			Set("weight", jsonv.Number(float64(eq.Weight)))

		if eq.Damage != nil {
			damage := jsonv.NewObject().Set("damage_dice", jsonv.String(eq.Damage.DamageDice))
			if eq.Damage.DamageType != nil {
				damage.Set("damage_type", reference(eq.Damage.DamageType))
			}
			data.Set("damage", damage)
		}

		properties := jsonv.Array{}
		for _, prop := range eq.Properties {
			if prop != nil {
				properties = append(properties, reference(prop))
			}
		}
		data.Set("properties", properties)

	case *entities.Armor:
		if eq == nil {
			return nil
		}
		payload.Key, payload.Name = eq.Key, eq.Name
		data.
			Set("name", jsonv.String(eq.Name)).
			Set("key", jsonv.String(eq.Key)).
			Set("equipment_category", reference(eq.EquipmentCategory)).
			Set("armor_category", optionalString(eq.ArmorCategory)).
			Set("cost", cost(eq.Cost)).
			Set("weight", jsonv.Number(float64(eq.Weight))).
			Set("str_minimum", jsonv.Number(float64(eq.StrMinimum))).
			Set("stealth_disadvantage", jsonv.Bool(eq.StealthDisadvantage))

		if eq.ArmorClass != nil {
			data.Set("armor_class", jsonv.NewObject().
				Set("base", jsonv.Number(float64(eq.ArmorClass.Base))).
				Set("dex_bonus", jsonv.Bool(eq.ArmorClass.DexBonus)))
		}

	case *entities.Equipment:
		if eq == nil {
			return nil
		}
		payload.Key, payload.Name = eq.Key, eq.Name
		data.
			Set("name", jsonv.String(eq.Name)).
			Set("key", jsonv.String(eq.Key)).
			Set("equipment_category", reference(eq.EquipmentCategory)).
			Set("cost", cost(eq.Cost)).
			Set("weight", jsonv.Number(float64(eq.Weight)))

	default:
		return nil
	}

	payload.Data = data
	return payload
}

func equipmentType(apiType string) string {
	switch apiType {
	case ruleset.EntityTypeWeapon, ruleset.EntityTypeArmor:
		return apiType
	default:
		return ruleset.EntityTypeEquipment
	}
}

func convertRace(race *entities.Race) *Payload {
	data := jsonv.NewObject().
		Set("name", jsonv.String(race.Name)).
		Set("key", jsonv.String(race.Key)).
		Set("size", optionalString(race.Size)).
		Set("size_description", optionalString(race.SizeDescription)).
		Set("speed", jsonv.NewObject().
			Set("walk", jsonv.Number(float64(race.Speed))).
			Set("unit", jsonv.String(distanceUnit)))

	bonuses := jsonv.NewObject()
	for _, bonus := range race.AbilityBonuses {
		if bonus.AbilityScore != nil {
			bonuses.Set(bonus.AbilityScore.Key, jsonv.Number(float64(bonus.Bonus)))
		}
	}
	data.Set("ability_bonuses", bonuses)

	traits := jsonv.Array{}
	for _, trait := range race.Traits {
		traits = append(traits, jsonv.NewObject().Set("name", jsonv.String(trait.Name)))
	}
	data.Set("traits", traits)

	languages := jsonv.Array{}
	for _, lang := range race.Languages {
		languages = append(languages, jsonv.NewObject().Set("name", jsonv.String(lang.Name)))
	}
	data.Set("languages", languages)

	proficiencies := jsonv.Array{}
	for _, prof := range race.StartingProficiencies {
		proficiencies = append(proficiencies, jsonv.NewObject().Set("name", jsonv.String(prof.Name)))
	}
	data.Set("starting_proficiencies", proficiencies)

	subraces := jsonv.Array{}
	for _, subrace := range race.SubRaces {
		subraces = append(subraces, jsonv.NewObject().
			Set("name", jsonv.String(subrace.Name)).
			Set("key", jsonv.String(subrace.Key)))
	}
	data.Set("subraces", subraces)

	return &Payload{
		Key:        race.Key,
		Name:       race.Name,
		EntityType: ruleset.EntityTypeRace,
		Data:       data,
	}
}

func convertFeature(feature *entities.Feature) *Payload {
	data := jsonv.NewObject().
		Set("name", jsonv.String(feature.Name)).
		Set("key", jsonv.String(feature.Key)).
		Set("level", jsonv.Number(float64(feature.Level))).
		Set("class", reference(feature.Class))

	desc := fmt.Sprintf("**Level %d feature**", feature.Level)
	if feature.Class != nil {
		desc = fmt.Sprintf("**Level %d %s feature**", feature.Level, feature.Class.Name)
	}
	data.Set("desc", jsonv.String(desc))

	return &Payload{
		Key:        feature.Key,
		Name:       feature.Name,
		EntityType: ruleset.EntityTypeFeature,
		Data:       data,
	}
}

func reference(ref *entities.ReferenceItem) jsonv.Value {
	if ref == nil {
		return jsonv.Null{}
	}
	return jsonv.NewObject().
		Set("name", jsonv.String(ref.Name)).
		Set("key", jsonv.String(ref.Key))
}

func cost(c *entities.Cost) jsonv.Value {
	if c == nil {
		return jsonv.Null{}
	}
	return jsonv.NewObject().
		Set("quantity", jsonv.Number(float64(c.Quantity))).
		Set("unit", jsonv.String(c.Unit))
}

func optionalString(s string) jsonv.Value {
	if s == "" {
		return jsonv.Null{}
	}
	return jsonv.String(s)
}
