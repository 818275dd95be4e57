package smartselect

// Messages are the caller-customizable texts for the popover's empty and
// error states. An empty visible list renders NoOptions when the search text
// is empty and NoResults (a printf format receiving the search text) when it
// is not — the two states are deliberately distinct.
type Messages struct {
	Placeholder string
	NoOptions   string
	NoResults   string
}

// Config describes one select instance. Label is the only required function;
// everything else has a usable default.
type Config[A comparable] struct {
	// IDPrefix namespaces the instance's element ids. Instances mounted in
	// the same program must use distinct prefixes.
	IDPrefix string

	// Label renders an option for display and is the target of the default
	// search predicate.
	Label func(A) string

	// Description optionally renders a secondary line under an option.
	Description func(A) string

	// Multi selects list semantics: repeated selection, chips on the
	// trigger, Backspace deselection. Single-select keeps at most one value.
	Multi bool

	// CloseOnSelect closes the popover after a selection. Single-select
	// only; multi-select never auto-closes because selecting is expected to
	// be repeated.
	CloseOnSelect bool

	// SearchPredicate filters the candidate list against the search text.
	// Defaults to a case-insensitive substring match on the label. Not
	// applied to remote results — those were already filtered by the query.
	SearchPredicate func(query string, option A) bool

	// MaxVisible caps the number of option rows rendered at once; the list
	// scrolls beyond it.
	MaxVisible int

	// Messages override the empty-state and placeholder texts.
	Messages Messages

	// Remote switches the instance to remote querying. Nil means local
	// options supplied via SetOptions.
	Remote *RemoteConfig[A]

	// Surface performs geometry measurement and focus side effects.
	// Defaults to a surface that measures nothing, which keeps the popover
	// hidden until the host injects a real one.
	Surface Surface

	// Styles override the default look.
	Styles *Styles
}

const defaultMaxVisible = 8

func (c *Config[A]) applyDefaults() {
	if c.Label == nil {
		c.Label = func(A) string { return "" }
	}
	if c.SearchPredicate == nil {
		c.SearchPredicate = defaultPredicate(c.Label)
	}
	if c.MaxVisible <= 0 {
		c.MaxVisible = defaultMaxVisible
	}
	if c.Messages.Placeholder == "" {
		c.Messages.Placeholder = "Select..."
	}
	if c.Messages.NoOptions == "" {
		c.Messages.NoOptions = "No options available"
	}
	if c.Messages.NoResults == "" {
		c.Messages.NoResults = "No results for %q"
	}
	if c.Surface == nil {
		c.Surface = nopSurface{}
	}
	if c.Styles == nil {
		c.Styles = NewStyles()
	}
	if c.Remote != nil {
		c.Remote.applyDefaults()
	}
}
