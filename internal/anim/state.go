// Package anim implements the action/direction state machine shared by every
// animated actor, together with frame tables and the frame-cycle counter that
// drives playback.
package anim

import "github.com/vovakirdan/tui-graveyard/internal/core"

// Action is a behavioral mode of an actor.
type Action uint8

const (
	ActionIdle Action = iota
	ActionWalking
	ActionJumping
	ActionCrouching
	ActionClimbing
	ActionClimbingPose
	ActionAttacking
	ActionAttackingCrouched
	ActionEmerging
	ActionImmersing
	ActionSpawning
	ActionBig
	ActionSmall
	ActionOpen
	ActionClose
	ActionDead
)

var actionNames = [...]string{
	ActionIdle:              "idle",
	ActionWalking:           "walking",
	ActionJumping:           "jumping",
	ActionCrouching:         "crouching",
	ActionClimbing:          "climbing",
	ActionClimbingPose:      "climbing_pose",
	ActionAttacking:         "attacking",
	ActionAttackingCrouched: "attacking_crouched",
	ActionEmerging:          "emerging",
	ActionImmersing:         "immersing",
	ActionSpawning:          "spawning",
	ActionBig:               "big",
	ActionSmall:             "small",
	ActionOpen:              "open",
	ActionClose:             "close",
	ActionDead:              "dead",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// State is the (Action, Direction) pair of an actor. It is a plain value and
// compares with ==.
type State struct {
	Action    Action
	Direction core.Direction
}

func (s State) String() string {
	return s.Action.String() + "/" + s.Direction.String()
}
