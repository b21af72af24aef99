package shape

//go:generate go tool stringer -type=Kind -output=kind_string.go -trimprefix=Kind

// Kind tags the variant of a Shape.
type Kind int

const (
	KindInvalid    Kind = iota // zero value, never produced by constructors
	KindLeaf                   // scalar
	KindOptional               // transparent wrapper
	KindCollection             // sequence or set, grouped in parentheses
	KindMap                    // keyed mapping, treated as a leaf
	KindComposite              // nested record, addressed by slash paths
	KindFlatten                // composite spliced into the parent

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

// IsWrapper reports whether the kind forwards to an inner shape without
// contributing a segment of its own.
func (k Kind) IsWrapper() bool {
	return k == KindOptional || k == KindFlatten
}
