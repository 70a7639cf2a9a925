package gameschema

import "github.com/kungfusheep/schemasync/schema"

// Bot extends Player with a power level, another "number" field — so
// unlike Player, Bot must override GetNumber/SetNumber and explicitly
// delegate upward to Player's (promoted from Entity) for x and y.
type Bot struct {
	Player

	power float64
}

func NewBot() *Bot {
	b := &Bot{}
	b.Init(b)
	return b
}

func (b *Bot) FieldTable() *schema.FieldTable { return botFields }
func (b *Bot) TypeID() schema.TypeID          { return TypeBot }

func (b *Bot) GetNumber(name string) float64 {
	if name == "power" {
		return b.power
	}
	return b.Player.GetNumber(name)
}

func (b *Bot) SetNumber(name string, v float64) {
	if name == "power" {
		b.power = v
		return
	}
	b.Player.SetNumber(name, v)
}
