package mutpoint

// DiffConfig enables the diff overlay. Once a primary value moves beyond
// ±Threshold the chart keeps a copy of that series as its secondary series,
// and the overlay draws it with Positive above +Threshold and Negative below
// -Threshold.
//
// The threshold is used as given: a negative Threshold makes every defined
// point cross it.
//
// Positive and Negative are optional; DiffOverlay substitutes colored lines
// when they are nil.
type DiffConfig struct {
	Threshold float64
	Positive  Renderer
	Negative  Renderer
}

// DiffState is the visibility of the secondary series.
type DiffState int

const (
	// DiffHidden means no secondary series is published.
	DiffHidden DiffState = iota
	// DiffShown means a secondary series is published.
	DiffShown
)

// String returns "hidden" or "shown".
func (s DiffState) String() string {
	if s == DiffShown {
		return "shown"
	}
	return "hidden"
}

// DiffController decides when the secondary series appears.
//
// The controller only moves from hidden to shown. A later primary series
// that crosses the threshold replaces the secondary series; one that stays
// within it leaves the previous secondary series in place. Call Clear to
// hide it again.
//
// A DiffController is not safe for concurrent use.
type DiffController struct {
	cfg       *DiffConfig
	state     DiffState
	secondary Series
}

// NewDiffController creates a controller. A non-empty initial series is
// published right away. A nil cfg disables the controller: Observe never
// publishes anything.
func NewDiffController(cfg *DiffConfig, initial Series) *DiffController {
	c := &DiffController{cfg: cfg}
	if len(initial) > 0 {
		c.state = DiffShown
		c.secondary = initial.Clone()
	}
	return c
}

// Observe scans primary in order. At the first point whose y value is
// beyond +Threshold or -Threshold, a copy of the whole primary series
// becomes the secondary series and the rest is not scanned.
// It returns the secondary series and whether Observe changed it.
func (c *DiffController) Observe(primary Series) (Series, bool) {
	if c.cfg == nil {
		return c.Secondary(), false
	}
	t := c.cfg.Threshold
	for _, p := range primary {
		if p.Y > t || p.Y < -t {
			changed := c.state != DiffShown || !c.secondary.Equal(primary)
			c.state = DiffShown
			c.secondary = primary.Clone()
			if changed {
				Logger().Debug("diff shown", "threshold", t, "points", len(primary))
			}
			return c.Secondary(), changed
		}
	}
	return c.Secondary(), false
}

// Clear hides the secondary series.
func (c *DiffController) Clear() {
	if c.state == DiffShown {
		Logger().Debug("diff cleared")
	}
	c.state = DiffHidden
	c.secondary = nil
}

// State returns the current state.
func (c *DiffController) State() DiffState {
	return c.state
}

// Secondary returns a copy of the published series, nil when hidden.
func (c *DiffController) Secondary() Series {
	return c.secondary.Clone()
}

// Config returns the configuration the controller was created with.
func (c *DiffController) Config() *DiffConfig {
	return c.cfg
}
