package gameschema

import "github.com/kungfusheep/schemasync/schema"

// Player extends Entity with a display name. It declares no new number
// field, so it inherits Entity's GetNumber/SetNumber by promotion rather
// than overriding them — "delegate upward" falls out of embedding here
// with no forwarding code at all.
type Player struct {
	Entity

	name string
}

func NewPlayer() *Player {
	p := &Player{}
	p.Init(p)
	return p
}

func (p *Player) FieldTable() *schema.FieldTable { return playerFields }
func (p *Player) TypeID() schema.TypeID          { return TypePlayer }

func (p *Player) GetString(name string) string {
	if name == "name" {
		return p.name
	}
	return p.Entity.GetString(name)
}

func (p *Player) SetString(name string, v string) {
	if name == "name" {
		p.name = v
		return
	}
	p.Entity.SetString(name, v)
}
