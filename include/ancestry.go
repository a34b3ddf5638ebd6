package include

// ancestry is the chain of documents being resolved, innermost first.
// Pushing shares the tail, so a path added by one child is never seen by its
// siblings.
type ancestry struct {
	path   string
	parent *ancestry
}

func (a *ancestry) push(path string) *ancestry {
	return &ancestry{path: path, parent: a}
}

func (a *ancestry) contains(path string) bool {
	for c := a; c != nil; c = c.parent {
		if c.path == path {
			return true
		}
	}

	return false
}

// paths returns the chain from the root down.
func (a *ancestry) paths() []string {
	var out []string
	for c := a; c != nil; c = c.parent {
		out = append(out, c.path)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
