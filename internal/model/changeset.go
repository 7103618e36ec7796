package model

// ChangeSet is the ordered, duplicate-free list of project-relative paths
// considered changed for one invocation.
type ChangeSet struct {
	Paths []string
	// Undetermined is set when git state could not be read at all (for
	// example, the project is not a repository). It is distinct from an
	// empty but determined change set.
	Undetermined bool
	// Warnings are user-facing notes about degraded git queries.
	Warnings []string
}

// Empty reports whether the change set holds no paths.
func (c ChangeSet) Empty() bool {
	return len(c.Paths) == 0
}
