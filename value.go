package autocanvas

// Value is an animatable number. It holds a raw value that can be assigned
// directly, bound to a formula, or moved over time by queued Tasks.
//
// Reads never re-evaluate the formula; call Fix when the state the formula
// depends on changes.
type Value struct {
	raw     float64
	formula func() float64
	tasks   []*Task
}

// NewValue creates a Value holding v.
func NewValue(v float64) *Value {
	return &Value{raw: v}
}

// Set stores v directly. Queued tasks keep running.
func (v *Value) Set(x float64) {
	v.raw = x
}

// Bind makes formula the source of the value and fixes it immediately.
// Bind(nil) unbinds and leaves the current raw value in place.
func (v *Value) Bind(formula func() float64) {
	v.formula = formula
	v.Fix()
}

// Bound reports whether a formula is bound.
func (v *Value) Bound() bool {
	return v.formula != nil
}

// Get returns the cached raw value.
func (v *Value) Get() float64 {
	return v.raw
}

// Fix recomputes the raw value from the bound formula, if any.
func (v *Value) Fix() {
	if v.formula != nil {
		v.raw = v.formula()
	}
}

// AddTask appends t to the task queue. Tasks run in insertion order.
func (v *Value) AddTask(t *Task) {
	v.tasks = append(v.tasks, t)
}

// Target returns the value once every queued task has run out.
func (v *Value) Target() float64 {
	x := v.raw
	for _, t := range v.tasks {
		x += t.Remaining()
	}
	return x
}

// Tween queues a task that ends the value at to after durationMS
// milliseconds, counting what already queued tasks have left to apply, and
// returns it.
func (v *Value) Tween(to, durationMS float64, easing Easing) *Task {
	t := NewTask(to-v.Target(), durationMS, easing)
	v.AddTask(t)
	return t
}

// Pending returns the number of live tasks.
func (v *Value) Pending() int {
	return len(v.tasks)
}

// Tick runs every queued task once against v and drops the tasks that died
// on this tick. Survivors keep their relative order.
func (v *Value) Tick(dt float64) {
	if len(v.tasks) == 0 {
		return
	}
	live := v.tasks[:0]
	for _, t := range v.tasks {
		t.Tick(v, dt)
		if !t.Dead() {
			live = append(live, t)
		}
	}
	// Clear the tail so dead tasks are not retained by the backing array.
	for i := len(live); i < len(v.tasks); i++ {
		v.tasks[i] = nil
	}
	v.tasks = live
}
