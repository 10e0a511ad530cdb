package calc

// Calculator owns one State and tracks a version that advances on every
// effective transition.
type Calculator struct {
	st      State
	version uint64

	last    Change
	hasLast bool
}

// Change describes the most recent effective transition.
type Change struct {
	Key           Key
	VersionBefore uint64
	VersionAfter  uint64
	Before        State
	After         State
}

func New() *Calculator {
	return &Calculator{st: Initial()}
}

func (c *Calculator) State() State { return c.st }

func (c *Calculator) Display() string { return c.st.Display }

func (c *Calculator) Version() uint64 { return c.version }

// Pending returns the auxiliary "<previous> <operator>" line, if any.
func (c *Calculator) Pending() (string, bool) { return c.st.Pending() }

// LastChange returns the most recent effective change.
func (c *Calculator) LastChange() (Change, bool) {
	if !c.hasLast {
		return Change{}, false
	}
	return c.last, true
}

// Press applies k and reports whether the state changed.
func (c *Calculator) Press(k Key) bool {
	next := Step(c.st, k)
	if next.Equal(c.st) {
		return false
	}
	c.last = Change{
		Key:           k,
		VersionBefore: c.version,
		VersionAfter:  c.version + 1,
		Before:        c.st,
		After:         next,
	}
	c.hasLast = true
	c.st = next
	c.version++
	return true
}

func (c *Calculator) InputDigit(d byte) { c.Press(DigitKey(d)) }

func (c *Calculator) InputDecimal() { c.Press(Key{Kind: KeyDecimal}) }

func (c *Calculator) InputOperator(op Operator) { c.Press(OperatorKey(op)) }

// Calculate applies the pending operation. It is a no-op when nothing is
// pending.
func (c *Calculator) Calculate() { c.Press(Key{Kind: KeyEquals}) }

// Clear resets every field to its initial value.
func (c *Calculator) Clear() { c.Press(Key{Kind: KeyClear}) }

// ClearEntry resets only the display, keeping any pending operation.
func (c *Calculator) ClearEntry() { c.Press(Key{Kind: KeyClearEntry}) }
