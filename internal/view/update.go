package view

// Event is a view-state transition. Apply is the single place state
// changes, so every rule (page reset on filter change, clamping) lives
// here.
type Event interface{ isEvent() }

type SetQuery struct{ Query string }
type SetProjectFilter struct{ ProjectID *int64 }
type SetTagFilter struct{ Tag string }
type SetLayout struct{ Layout Layout }
type GotoPage struct{ Page int }
type NextPage struct{}
type PrevPage struct{}
type ToggleTheme struct{}

func (SetQuery) isEvent()         {}
func (SetProjectFilter) isEvent() {}
func (SetTagFilter) isEvent()     {}
func (SetLayout) isEvent()        {}
func (GotoPage) isEvent()         {}
func (NextPage) isEvent()         {}
func (PrevPage) isEvent()         {}
func (ToggleTheme) isEvent()      {}

// Apply returns the next state. total is the length of the currently
// filtered term list, needed to clamp page navigation.
func Apply(s State, event Event, total int) State {
	switch event := event.(type) {
	case SetQuery:
		s.Query = event.Query
		s.Page = 1
	case SetProjectFilter:
		s.ProjectID = event.ProjectID
		s.Page = 1
	case SetTagFilter:
		s.Tag = event.Tag
		s.Page = 1
	case SetLayout:
		s.Layout = event.Layout
		s.Page = 1
	case GotoPage:
		s.Page = ClampPage(event.Page, total, s.Layout)
	case NextPage:
		s.Page = ClampPage(s.Page+1, total, s.Layout)
	case PrevPage:
		s.Page = ClampPage(s.Page-1, total, s.Layout)
	case ToggleTheme:
		s.Dark = !s.Dark
	}
	return s
}
