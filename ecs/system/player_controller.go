package system

import (
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// PlayerController turns raw input into movement intent and attack
// requests for the player character.
type PlayerController struct{}

func NewPlayerController() *PlayerController {
	return &PlayerController{}
}

func (s *PlayerController) Update(w *ecs.World) {
	ecs.ForEach3(w,
		component.InputComponent.Kind(),
		component.IntentComponent.Kind(),
		component.CharacterComponent.Kind(),
		func(e ecs.Entity, in *component.Input, intent *component.Intent, c *component.Character) {
			intent.MoveX = in.MoveX
			intent.Run = in.Run

			if !in.AttackPressed || c.Attacking {
				return
			}
			prev := c.State
			if c.SetState(component.StateAttack) {
				w.Events().Push(ecs.Event{
					Type: ecs.EventStateChanged,
					Data: ecs.StateChangeEvent{Entity: e, From: prev, To: c.State},
				})
			}
		})
}
