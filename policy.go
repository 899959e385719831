package markupweaver

// ClosePolicy controls how a tag is closed once the builder is forced to
// emit it.
type ClosePolicy int

const (
	// CloseNormal self-closes the tag if it is still empty when it is
	// closed, and writes a paired end tag otherwise.
	CloseNormal ClosePolicy = iota
	// CloseSelf always self-closes: the tag is emitted as <name/> the
	// moment anything forces it out, and it never waits for children.
	CloseSelf
	// ClosePair always writes a paired <name></name>, even when empty.
	ClosePair
)

// String returns a short lower-case name for the policy.
func (p ClosePolicy) String() string {
	switch p {
	case CloseNormal:
		return "normal"
	case CloseSelf:
		return "self"
	case ClosePair:
		return "pair"
	default:
		return "unknown"
	}
}

// alwaysSelfCloses reports whether the tag must be closed in the same
// write that opens it, regardless of content attempted later.
func (p ClosePolicy) alwaysSelfCloses() bool { return p == CloseSelf }

// selfCloses reports whether an empty tag may be emitted as <name/>.
func (p ClosePolicy) selfCloses() bool { return p == CloseSelf || p == CloseNormal }
