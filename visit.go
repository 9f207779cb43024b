package exprtree

// Visitor is called for each node during Walk.
type Visitor func(e Expr) error

// Walk visits e and then each of its subtrees in pre-order, left before right.
//
// The first error returned by visitor stops the walk and is returned.
func Walk(e Expr, visitor Visitor) error {
	if err := visitor(e); err != nil {
		return err
	}
	switch e := e.(type) {
	case *Binary:
		if err := Walk(e.left, visitor); err != nil {
			return err
		}
		return Walk(e.right, visitor)

	case *Integer, *Variable:

	default:
		panic("unsupported")
	}
	return nil
}
