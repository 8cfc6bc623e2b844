package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/modifier"
)

// countingOp finishes after a fixed number of Step calls, recording how
// many times it was actually invoked.
type countingOp struct {
	stepsToFinish int
	calls         int
	done          bool
}

func (o *countingOp) Kind() modifier.Kind { return modifier.KindMPD }
func (o *countingOp) Done() bool          { return o.done }
func (o *countingOp) Step(*heightfield.Patch) (bool, error) {
	o.calls++
	if o.calls >= o.stepsToFinish {
		o.done = true
	}
	return true, nil
}

func TestQueue_NeverCascadesWithinOneUpdate(t *testing.T) {
	first := &countingOp{stepsToFinish: 1}
	second := &countingOp{stepsToFinish: 1}
	q := modifier.NewQueue(first, second)

	patch, err := heightfield.New([3]int32{}, 3, heightfield.ModeSequential)
	require.NoError(t, err)

	changed, err := q.Update(patch)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "second operator must not be stepped in the same Update call first transitioned to done")

	changed, err = q.Update(patch)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, second.calls)

	assert.True(t, q.AllDone())
}

func TestQueue_UpdateIsNoopOnceAllDone(t *testing.T) {
	op := &countingOp{stepsToFinish: 1}
	q := modifier.NewQueue(op)
	patch, err := heightfield.New([3]int32{}, 3, heightfield.ModeSequential)
	require.NoError(t, err)

	_, err = q.Update(patch)
	require.NoError(t, err)
	require.True(t, q.AllDone())

	changed, err := q.Update(patch)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, op.calls)
}

func TestQueue_MultiStepOperatorIsCalledRepeatedly(t *testing.T) {
	op := &countingOp{stepsToFinish: 3}
	q := modifier.NewQueue(op)
	patch, err := heightfield.New([3]int32{}, 3, heightfield.ModeSequential)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := q.Update(patch)
		require.NoError(t, err)
	}
	assert.True(t, op.done)
	assert.Equal(t, 3, op.calls)
}
