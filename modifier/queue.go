package modifier

import "github.com/terrainforge/terrainforge/heightfield"

// Queue holds a FIFO of Operators for one patch and drives them one STEP
// at a time (spec §4.5 "Modifier driver").
type Queue struct {
	ops []Operator
}

// NewQueue builds a Queue from an ordered list of operators.
func NewQueue(ops ...Operator) *Queue {
	return &Queue{ops: ops}
}

// Push appends an operator to the end of the queue.
func (q *Queue) Push(op Operator) {
	q.ops = append(q.ops, op)
}

// Update scans the queue for the first operator with Done()==false and
// invokes its Step once. If that operator transitions to done during this
// call, the next queued operator is only stepped on the *next* Update
// call, never within the same one (spec §4.5). Returns changed=false with
// no error once every operator is done.
func (q *Queue) Update(patch *heightfield.Patch) (changed bool, err error) {
	for _, op := range q.ops {
		if !op.Done() {
			return op.Step(patch)
		}
	}
	return false, nil
}

// AllDone reports whether every operator in the queue has finished.
func (q *Queue) AllDone() bool {
	for _, op := range q.ops {
		if !op.Done() {
			return false
		}
	}
	return true
}
