package feed

// Extent describes a registered cell's vertical placement in feed
// coordinates (lines from the top of the scrollable content).
type Extent struct {
	Top    int
	Height int
}

// Crossing reports a cell whose visible fraction rose through the
// activation threshold on the latest observation.
type Crossing struct {
	ID       string
	Fraction float64
}

// Tracker reports which registered cells become sufficiently visible as
// the viewport moves. Crossings are reported in registration order; the
// controller treats the last one as the sole source of truth. Nothing at
// this level keeps two cells from crossing in the same observation.
type Tracker interface {
	Register(id string, ext Extent)
	Unregister(id string)
	Observe(viewTop, viewHeight int) []Crossing
}

// activationThreshold is the visible fraction at which a cell becomes the
// playback candidate.
const activationThreshold = 0.8

// GeometryTracker implements Tracker over plain line arithmetic. It only
// emits a crossing when a cell's fraction moves from below the threshold
// to at-or-above it, so a cell that stays visible does not re-fire.
type GeometryTracker struct {
	extents map[string]Extent
	order   []string
	last    map[string]float64
}

// NewTracker returns an empty GeometryTracker.
func NewTracker() *GeometryTracker {
	return &GeometryTracker{
		extents: make(map[string]Extent),
		last:    make(map[string]float64),
	}
}

// Register implements Tracker. Re-registering an id updates its extent
// in place without resetting threshold state.
func (t *GeometryTracker) Register(id string, ext Extent) {
	if _, ok := t.extents[id]; !ok {
		t.order = append(t.order, id)
	}
	t.extents[id] = ext
}

// Unregister implements Tracker. All bookkeeping for the id is severed so
// no stale crossing can surface for it afterwards.
func (t *GeometryTracker) Unregister(id string) {
	if _, ok := t.extents[id]; !ok {
		return
	}
	delete(t.extents, id)
	delete(t.last, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Observe implements Tracker.
func (t *GeometryTracker) Observe(viewTop, viewHeight int) []Crossing {
	var crossings []Crossing
	for _, id := range t.order {
		ext := t.extents[id]
		frac := visibleFraction(ext, viewTop, viewHeight)
		prev := t.last[id]
		t.last[id] = frac
		if prev < activationThreshold && frac >= activationThreshold {
			crossings = append(crossings, Crossing{ID: id, Fraction: frac})
		}
	}
	return crossings
}

func visibleFraction(ext Extent, viewTop, viewHeight int) float64 {
	if ext.Height <= 0 || viewHeight <= 0 {
		return 0
	}
	top := ext.Top
	bottom := ext.Top + ext.Height
	viewBottom := viewTop + viewHeight
	if top < viewTop {
		top = viewTop
	}
	if bottom > viewBottom {
		bottom = viewBottom
	}
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(ext.Height)
}
