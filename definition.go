package squidward

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownName is returned when a definition references an action,
	// guard, effect or filter name that was never registered.
	ErrUnknownName = errors.New("name not registered")

	// ErrDuplicateName is returned when registering a name twice, or when
	// a definition declares two states with the same name.
	ErrDuplicateName = errors.New("name already registered")
)

// Registry resolves the callback names used by YAML definitions. All
// registrations reject empty names, nil callbacks and duplicates.
type Registry struct {
	actions map[string]Action
	guards  map[string]func(any) bool
	effects map[string]func(any)
	filters map[string]func(any) bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Action),
		guards:  make(map[string]func(any) bool),
		effects: make(map[string]func(any)),
		filters: make(map[string]func(any) bool),
	}
}

// RegisterAction registers a named entry/exit action.
func (r *Registry) RegisterAction(name string, fn Action) error {
	if err := checkRegistration(name, fn == nil); err != nil {
		return err
	}
	if _, ok := r.actions[name]; ok {
		return fmt.Errorf("%w: action %q", ErrDuplicateName, name)
	}
	r.actions[name] = fn
	return nil
}

// RegisterGuard registers a named transition guard.
func (r *Registry) RegisterGuard(name string, fn func(event any) bool) error {
	if err := checkRegistration(name, fn == nil); err != nil {
		return err
	}
	if _, ok := r.guards[name]; ok {
		return fmt.Errorf("%w: guard %q", ErrDuplicateName, name)
	}
	r.guards[name] = fn
	return nil
}

// RegisterEffect registers a named transition effect.
func (r *Registry) RegisterEffect(name string, fn func(event any)) error {
	if err := checkRegistration(name, fn == nil); err != nil {
		return err
	}
	if _, ok := r.effects[name]; ok {
		return fmt.Errorf("%w: effect %q", ErrDuplicateName, name)
	}
	r.effects[name] = fn
	return nil
}

// RegisterFilter registers a named event-type filter. A transition
// declaring the filter matches only events the filter accepts;
// transitions without one match any event.
func (r *Registry) RegisterFilter(name string, fn func(event any) bool) error {
	if err := checkRegistration(name, fn == nil); err != nil {
		return err
	}
	if _, ok := r.filters[name]; ok {
		return fmt.Errorf("%w: filter %q", ErrDuplicateName, name)
	}
	r.filters[name] = fn
	return nil
}

func checkRegistration(name string, nilFn bool) error {
	if name == "" {
		return errors.New("registration name must not be empty")
	}
	if nilFn {
		return fmt.Errorf("callback %q must not be nil", name)
	}
	return nil
}

// Definition is a declarative automaton description, typically
// unmarshaled from YAML. Callback fields hold Registry names.
type Definition struct {
	Name        string                 `yaml:"name"`
	Initial     string                 `yaml:"initial"`
	States      []StateDefinition      `yaml:"states"`
	Transitions []TransitionDefinition `yaml:"transitions"`
}

// StateDefinition declares one state of a Definition.
type StateDefinition struct {
	Name  string `yaml:"name"`
	Entry string `yaml:"entry,omitempty"`
	Exit  string `yaml:"exit,omitempty"`
}

// TransitionDefinition declares one transition of a Definition. From and
// To name states of the same definition; Event names a registered
// filter, empty meaning "matches any event".
type TransitionDefinition struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Event  string `yaml:"event,omitempty"`
	Guard  string `yaml:"guard,omitempty"`
	Action string `yaml:"action,omitempty"`
}

// LoadDefinition unmarshals a YAML definition and builds it against the
// registry. The resulting automaton uses the default immediate executor;
// callers needing an asynchronous executor should use the programmatic
// builders instead.
func LoadDefinition(data []byte, reg *Registry) (*Automaton, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("unmarshal definition: %w", err)
	}
	return def.Build(reg)
}

// Build resolves the definition's names against the registry and builds
// the automaton through the regular builders, so every construction-time
// invariant (referential integrity, set semantics, required initial
// state) applies to declarative automatons too.
func (d *Definition) Build(reg *Registry) (*Automaton, error) {
	if reg == nil {
		return nil, errors.New("registry must not be nil")
	}
	if len(d.States) == 0 {
		return nil, errors.New("definition declares no states")
	}
	if d.Initial == "" {
		return nil, fmt.Errorf("%w: initial state", ErrMissingField)
	}

	b := NewBuilder()
	byName := make(map[string]*State, len(d.States))
	for _, sd := range d.States {
		if sd.Name == "" {
			return nil, errors.New("state name must not be empty")
		}
		if _, ok := byName[sd.Name]; ok {
			return nil, fmt.Errorf("%w: state %q", ErrDuplicateName, sd.Name)
		}
		state, err := buildStateDefinition(sd, reg)
		if err != nil {
			return nil, err
		}
		byName[sd.Name] = state
		b.AddState(state)
	}

	for _, td := range d.Transitions {
		t, err := buildTransitionDefinition(td, byName, reg)
		if err != nil {
			return nil, err
		}
		b.AddTransition(t)
	}

	initial, ok := byName[d.Initial]
	if !ok {
		return nil, fmt.Errorf("%w: initial %q", ErrUnknownState, d.Initial)
	}
	return b.InitialState(initial).Build()
}

func buildStateDefinition(sd StateDefinition, reg *Registry) (*State, error) {
	sb := NewState().Named(sd.Name)
	if sd.Entry != "" {
		fn, ok := reg.actions[sd.Entry]
		if !ok {
			return nil, fmt.Errorf("%w: action %q", ErrUnknownName, sd.Entry)
		}
		sb.WhenEntered(fn)
	}
	if sd.Exit != "" {
		fn, ok := reg.actions[sd.Exit]
		if !ok {
			return nil, fmt.Errorf("%w: action %q", ErrUnknownName, sd.Exit)
		}
		sb.WhenExited(fn)
	}
	return sb.Build()
}

func buildTransitionDefinition(td TransitionDefinition, byName map[string]*State, reg *Registry) (*Transition, error) {
	src, ok := byName[td.From]
	if !ok {
		return nil, fmt.Errorf("%w: from %q", ErrUnknownState, td.From)
	}
	dst, ok := byName[td.To]
	if !ok {
		return nil, fmt.Errorf("%w: to %q", ErrUnknownState, td.To)
	}
	tb := NewTransition[any]().From(src).To(dst)
	if td.Guard != "" {
		fn, ok := reg.guards[td.Guard]
		if !ok {
			return nil, fmt.Errorf("%w: guard %q", ErrUnknownName, td.Guard)
		}
		tb.Check(fn)
	}
	if td.Action != "" {
		fn, ok := reg.effects[td.Action]
		if !ok {
			return nil, fmt.Errorf("%w: effect %q", ErrUnknownName, td.Action)
		}
		tb.Execute(fn)
	}
	t, err := tb.Build()
	if err != nil {
		return nil, err
	}
	if td.Event != "" {
		fn, ok := reg.filters[td.Event]
		if !ok {
			return nil, fmt.Errorf("%w: filter %q", ErrUnknownName, td.Event)
		}
		// Named filters replace the type-parameter filter, which is
		// necessarily "any" for declaratively built transitions.
		t.matches = fn
		t.eventType = td.Event
	}
	return t, nil
}
