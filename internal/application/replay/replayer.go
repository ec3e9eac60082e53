package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/bugland/internal/application/system"
	"github.com/younwookim/bugland/internal/domain/bug"
)

// Replayer plays back recorded transforms
type Replayer struct {
	data ScriptData
	step int
}

// NewReplayer creates a new replayer from script data
func NewReplayer(data ScriptData) *Replayer {
	return &Replayer{
		data: data,
		step: 0,
	}
}

// LoadScript loads script data from a file
func LoadScript(filename string) (*ScriptData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ScriptData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	return &data, nil
}

// Next returns the op for the current step and advances.
// ok is false once every step has been returned.
func (r *Replayer) Next() (op system.Op, ok bool, err error) {
	if r.step >= len(r.data.Steps) {
		return nil, false, nil
	}

	s := r.data.Steps[r.step]
	r.step++

	op, err = system.ParseOp(s.Transform())
	if err != nil {
		return nil, true, fmt.Errorf("step %d: %w", s.F, err)
	}
	return op, true, nil
}

// ApplyAll applies every remaining step to b
func (r *Replayer) ApplyAll(b *bug.Bug) (*bug.Bug, error) {
	cur := b
	for {
		op, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return cur, nil
		}
		cur, err = op.Apply(cur)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", r.step-1, op, err)
		}
	}
}

// CurrentStep returns the current step number
func (r *Replayer) CurrentStep() int {
	return r.step
}

// TotalSteps returns the total number of steps
func (r *Replayer) TotalSteps() int {
	return len(r.data.Steps)
}

// BugID returns the id of the bug the script was recorded on
func (r *Replayer) BugID() string {
	return r.data.Bug
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.step = 0
}
