package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFlagsAreDistinctBits(t *testing.T) {
	all := []Action{
		ActionMoveForward, ActionMoveBackward,
		ActionStrafeLeft, ActionStrafeRight,
		ActionFlyUp, ActionFlyDown,
		ActionMoveFaster,
	}

	var combined Action
	for _, a := range all {
		assert.Zero(t, combined&a, "flag %b overlaps previous flags", a)
		combined |= a
	}
	assert.Equal(t, Action(1<<len(all)-1), combined)
}

func TestActionHas(t *testing.T) {
	a := ActionMoveForward | ActionFlyUp

	assert.True(t, a.Has(ActionMoveForward))
	assert.True(t, a.Has(ActionFlyUp))
	assert.True(t, a.Has(ActionMoveForward|ActionFlyUp))
	assert.False(t, a.Has(ActionMoveBackward))
	assert.False(t, a.Has(ActionMoveForward|ActionMoveBackward), "Has requires every flag in the mask")

	var empty Action
	assert.True(t, empty.Has(0))
	assert.False(t, empty.Has(ActionMoveFaster))
}
