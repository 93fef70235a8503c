package main

// formKind discriminates the four shapes a parsed form can take.
type formKind int

const (
	formIdentifier formKind = iota
	formLiteral
	formGroup
	formSemicolon
)

// Form is one parsed source element. Every form carries the Position it
// was read at, which flows through to every opcode compiled from it (see
// Op.form) and so into every error that mentions that opcode.
type Form struct {
	Kind formKind
	Pos  Position

	name    string  // formIdentifier
	literal Value   // formLiteral
	group   []*Form // formGroup, in source order
}

// formList is the compiler's working queue of not-yet-emitted forms. A
// macro's body gets a mutable reference to it so it can consume (or, in
// principle, splice in) forms beyond its own. It is a plain slice-backed
// deque rather than the C original's intrusive linked list -- the design
// notes call this out explicitly as an equivalent, safer rewrite.
type formList struct {
	forms []*Form
}

func newFormList(forms []*Form) *formList {
	return &formList{forms: forms}
}

func (fl *formList) empty() bool { return len(fl.forms) == 0 }

// next detaches and returns the head of the list, or nil if it's empty.
func (fl *formList) next() *Form {
	if len(fl.forms) == 0 {
		return nil
	}
	f := fl.forms[0]
	fl.forms = fl.forms[1:]
	return f
}

// push puts a form back at the head of the list (used by the reader's
// per-turn driver, which peeks at the semicolon terminator).
func (fl *formList) push(f *Form) {
	fl.forms = append([]*Form{f}, fl.forms...)
}
