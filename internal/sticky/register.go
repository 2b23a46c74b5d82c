package sticky

import (
	"shellpane/internal/contrib"
	"shellpane/internal/term"
)

func init() {
	contrib.Register(contrib.Registration{
		ID:         ContributionID,
		Capability: term.CapCommandDetection,
		New: func(t *term.Terminal) contrib.Contribution {
			return New(t)
		},
	})
}

// Get returns the controller attached to t, if one was activated.
func Get(t *term.Terminal) (*Controller, bool) {
	c, ok := contrib.Get(t, ContributionID)
	if !ok {
		return nil, false
	}
	ctrl, ok := c.(*Controller)
	return ctrl, ok
}
