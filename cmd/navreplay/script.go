package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
	"github.com/BurntSushi/toml"
)

var (
	ErrUnknownOp    = errors.New("unknown op")
	ErrUnknownRoute = errors.New("unknown route")
	ErrBadStep      = errors.New("invalid step")
)

// Script is a sequence of steps decoded from [[step]] tables.
type Script struct {
	Steps []Step `toml:"step"`
}

// Step is one scripted action. Which fields apply depends on Op.
type Step struct {
	Op         string `toml:"op"`
	Route      string `toml:"route"`
	Arg        string `toml:"arg"`
	Until      string `toml:"until"`
	Message    string `toml:"message"`
	MessageID  string `toml:"message_id"`
	Expanded   string `toml:"expanded"`
	Duration   string `toml:"duration"`
	Index      int    `toml:"index"`
	Title      string `toml:"title"`
	FullScreen bool   `toml:"full_screen"`
}

// StepError reports a step that could not be compiled. Step is 1-based.
type StepError struct {
	Step int
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// LoadScript reads and decodes a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a script from TOML bytes.
func ParseScript(data []byte) (Script, error) {
	var s Script
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Script{}, fmt.Errorf("failed to parse script: unknown key %q", undecoded[0].String())
	}
	return s, nil
}

// Screen is the demo route type used by scripts.
type Screen struct {
	Name string
	ID   string
}

func (s Screen) String() string {
	if s.ID != "" {
		return s.Name + "(" + s.ID + ")"
	}
	return s.Name
}

// ParseRoute maps a script route name and argument to a route identity.
// Only home, detail and settings exist; detail requires an argument.
func ParseRoute(name, arg string) (route.Identity, error) {
	switch name {
	case "home", "settings":
		if arg != "" {
			return route.Identity{}, fmt.Errorf("%w: %s takes no arg", ErrBadStep, name)
		}
		return route.Wrap(Screen{Name: name}), nil
	case "detail":
		if arg == "" {
			return route.Identity{}, fmt.Errorf("%w: detail needs an arg", ErrBadStep)
		}
		return route.Wrap(Screen{Name: name, ID: arg}), nil
	case "":
		return route.Identity{}, fmt.Errorf("%w: route is required", ErrBadStep)
	default:
		return route.Identity{}, fmt.Errorf("%w %q", ErrUnknownRoute, name)
	}
}

// named matches screens by name regardless of their ID.
func named(name string) (route.Predicate, error) {
	switch name {
	case "home", "settings", "detail":
	case "":
		return nil, fmt.Errorf("%w: until is required", ErrBadStep)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownRoute, name)
	}
	return func(id route.Identity) bool {
		s, ok := route.As[Screen](id)
		return ok && s.Name == name
	}, nil
}

// action is a compiled step. Exactly one of build and advance is set.
type action struct {
	step    int
	op      string
	build   func(p *player) navstack.Command
	advance time.Duration
}

// compile validates every step up front so a bad script fails before any
// command is applied.
func compile(s Script) ([]action, error) {
	actions := make([]action, 0, len(s.Steps))
	for i, step := range s.Steps {
		a, err := compileStep(step)
		if err != nil {
			return nil, &StepError{Step: i + 1, Op: step.Op, Err: err}
		}
		a.step = i + 1
		a.op = step.Op
		actions = append(actions, a)
	}
	return actions, nil
}

func compileStep(step Step) (action, error) {
	command := func(cmd navstack.Command) (action, error) {
		return action{build: func(*player) navstack.Command { return cmd }}, nil
	}

	switch step.Op {
	case "push", "replace", "replace_all":
		r, err := ParseRoute(step.Route, step.Arg)
		if err != nil {
			return action{}, err
		}
		switch step.Op {
		case "push":
			return command(navstack.Push{Route: r})
		case "replace":
			return command(navstack.ReplaceTop{Route: r})
		default:
			return command(navstack.ReplaceAll{Route: r})
		}

	case "push_result":
		r, err := ParseRoute(step.Route, step.Arg)
		if err != nil {
			return action{}, err
		}
		return action{build: func(p *player) navstack.Command {
			return navstack.PushWithCallback{Route: r, Completion: p.printResult}
		}}, nil

	case "pop":
		var result any
		if step.Arg != "" {
			result = step.Arg
		}
		return command(navstack.Pop{Result: result})

	case "clear":
		return command(navstack.ClearToRoot{})

	case "pop_until":
		r, err := ParseRoute(step.Route, step.Arg)
		if err != nil {
			return action{}, err
		}
		until, err := named(step.Until)
		if err != nil {
			return action{}, err
		}
		return command(navstack.PopUntil{Route: r, Until: until})

	case "pop_while":
		until, err := named(step.Until)
		if err != nil {
			return action{}, err
		}
		return command(navstack.PopWhile{Until: until})

	case "notify":
		d, err := parseDuration(step.Duration, true)
		if err != nil {
			return action{}, err
		}
		if step.Message == "" && step.MessageID == "" {
			return action{}, fmt.Errorf("%w: message or message_id is required", ErrBadStep)
		}
		return action{build: func(p *player) navstack.Command {
			msg := step.Message
			if step.MessageID != "" {
				msg = p.ctrl.Localizer().Message(step.MessageID, nil)
			}
			dur := d
			if dur == 0 {
				dur = p.defaultDuration
			}
			return navstack.Notify{Message: msg, ExpandedMessage: step.Expanded, Duration: dur}
		}}, nil

	case "dismiss":
		if step.Index < 0 {
			return action{}, fmt.Errorf("%w: index must not be negative", ErrBadStep)
		}
		return action{build: func(p *player) navstack.Command {
			q := p.ctrl.Notifications()
			if step.Index >= len(q) {
				return navstack.DismissNotification{}
			}
			return navstack.DismissNotification{ID: q[step.Index].ID}
		}}, nil

	case "alert":
		if step.Title == "" {
			return action{}, fmt.Errorf("%w: title is required", ErrBadStep)
		}
		return action{build: func(p *player) navstack.Command {
			ok := navstack.DefaultButton(p.ctrl.Localizer().OKLabel(), nil)
			return navstack.ShowAlert{Alert: navstack.NewAlert(step.Title, step.Message, ok, nil)}
		}}, nil

	case "sheet":
		var opts []navstack.SheetOption
		if step.FullScreen {
			opts = append(opts, navstack.WithFullScreen())
		}
		return command(navstack.ShowSheet{Sheet: navstack.NewSheet(step.Message, opts...)})

	case "dismiss_sheet":
		return command(navstack.DismissSheet{})

	case "dismiss_alert":
		return command(navstack.DismissAlert{})

	case "advance":
		d, err := parseDuration(step.Duration, false)
		if err != nil {
			return action{}, err
		}
		return action{advance: d}, nil

	case "":
		return action{}, fmt.Errorf("%w: op is required", ErrBadStep)

	default:
		return action{}, fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
	}
}

func parseDuration(raw string, optional bool) (time.Duration, error) {
	if raw == "" {
		if optional {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: duration is required", ErrBadStep)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: duration: %v", ErrBadStep, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive", ErrBadStep)
	}
	return d, nil
}
