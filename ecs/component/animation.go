package component

import "github.com/milk9111/scrollshooter/animation"

// Animation drives Sprite.Source from a clip state machine.
type Animation struct {
	Machine *animation.StateMachine
}

var AnimationComponent = NewComponent[Animation]()
