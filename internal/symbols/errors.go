package symbols

import "fmt"

// ValidationError reports a manifest entry that cannot become a symbol.
type ValidationError struct {
	// Name is the display name of the offending entry.
	Name string
	// Source is where the entry was read from.
	Source string
	// Reason describes what is wrong.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("invalid entry %q (%s): %s", e.Name, e.Source, e.Reason)
	}
	return fmt.Sprintf("invalid entry %q: %s", e.Name, e.Reason)
}

// CollisionError reports two entries whose names sanitize to the same
// identifier.
type CollisionError struct {
	Identifier string
	First      string
	Second     string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("identifier %s is generated by both %q and %q (rename one asset or set naming.collisions: suffix)", e.Identifier, e.First, e.Second)
}
