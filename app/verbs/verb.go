package verbs

// Kind classifies the execution pattern of a verb.
// Everything that isn't one of the built-in sentinels is a Template.
type Kind int

const (
	Template Kind = iota
	Back
	Focus
	ToggleHidden
	Open
	Parent
	Quit
)

// builtins maps the sentinel execution patterns to their kind.
// Matching is exact, ":backup" is a template.
var builtins = map[string]Kind{
	":back":          Back,
	":focus":         Focus,
	":toggle_hidden": ToggleHidden,
	":open":          Open,
	":parent":        Parent,
	":quit":          Quit,
}

var kindNames = map[Kind]string{
	Template:     "template",
	Back:         "back",
	Focus:        "focus",
	ToggleHidden: "toggle_hidden",
	Open:         "open",
	Parent:       "parent",
	Quit:         "quit",
}

func (k Kind) String() string {
	return kindNames[k]
}

// IsBuiltin reports whether the kind changes navigation state
// instead of expanding a command template
func (k Kind) IsBuiltin() bool {
	return k != Template
}

// Verb is an action bound to an invocation key.
// It's a value type and never changes after New.
type Verb struct {
	name        string
	execPattern string
	kind        Kind
}

// New creates a verb and classifies its execution pattern once
func New(name string, execPattern string) Verb {
	kind, ok := builtins[execPattern]
	if !ok {
		kind = Template
	}

	return Verb{
		name:        name,
		execPattern: execPattern,
		kind:        kind,
	}
}

// Name is the label shown to the user
func (v Verb) Name() string { return v.name }

// ExecPattern is either a built-in sentinel or a command template
func (v Verb) ExecPattern() string { return v.execPattern }

func (v Verb) Kind() Kind { return v.kind }
