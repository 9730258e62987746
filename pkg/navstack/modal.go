package navstack

import "github.com/google/uuid"

// ButtonRole tells the presentation layer how to style an alert button.
type ButtonRole int

const (
	ButtonRoleDefault     ButtonRole = iota // Ordinary confirming action
	ButtonRoleCancel                        // Dismisses the alert without acting
	ButtonRoleDestructive                   // Deletes or discards something
)

func (r ButtonRole) String() string {
	switch r {
	case ButtonRoleDefault:
		return "default"
	case ButtonRoleCancel:
		return "cancel"
	case ButtonRoleDestructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// Button is one choice offered by an alert.
type Button struct {
	Label  string
	Role   ButtonRole
	Action func() // Run when the button is pressed; may be nil
}

// DefaultButton creates a button with the default role.
func DefaultButton(label string, action func()) Button {
	return Button{Label: label, Role: ButtonRoleDefault, Action: action}
}

// CancelButton creates a button with the cancel role.
func CancelButton(label string, action func()) Button {
	return Button{Label: label, Role: ButtonRoleCancel, Action: action}
}

// DestructiveButton creates a button with the destructive role.
func DestructiveButton(label string, action func()) Button {
	return Button{Label: label, Role: ButtonRoleDestructive, Action: action}
}

// Press runs the button's action, if any.
func (b Button) Press() {
	if b.Action != nil {
		b.Action()
	}
}

// Alert describes a modal alert. Only one alert is active at a time.
type Alert struct {
	ID        uuid.UUID
	Title     string
	Message   string  // Optional body text; empty if none
	Primary   Button
	Secondary *Button // Optional; presentation falls back to a cancel button
}

// NewAlert creates an alert with a fresh ID.
func NewAlert(title, message string, primary Button, secondary *Button) *Alert {
	return &Alert{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Primary:   primary,
		Secondary: secondary,
	}
}

// Buttons returns the two buttons to draw. When no secondary button was
// given, a cancel button labelled cancelLabel takes its place.
func (a *Alert) Buttons(cancelLabel string) (primary, secondary Button) {
	if a.Secondary != nil {
		return a.Primary, *a.Secondary
	}
	return a.Primary, CancelButton(cancelLabel, nil)
}

// Sheet describes a modal sheet. Content is opaque: navstack stores it and
// hands it back to the presentation layer without looking inside.
type Sheet struct {
	ID             uuid.UUID
	Content        any
	FullScreen     bool // Present at full height instead of the medium detent
	SwipeToDismiss bool // Allow the user to drag the sheet away
}

// SheetOption configures a Sheet built by NewSheet.
type SheetOption func(*Sheet)

// WithFullScreen presents the sheet at full height.
func WithFullScreen() SheetOption {
	return func(s *Sheet) { s.FullScreen = true }
}

// WithSwipeToDismiss sets whether the sheet can be dragged away.
func WithSwipeToDismiss(enabled bool) SheetOption {
	return func(s *Sheet) { s.SwipeToDismiss = enabled }
}

// NewSheet creates a sheet with a fresh ID. Sheets can be swiped away unless
// configured otherwise.
func NewSheet(content any, opts ...SheetOption) *Sheet {
	s := &Sheet{
		ID:             uuid.New(),
		Content:        content,
		SwipeToDismiss: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Modal holds the active alert and sheet. The two slots are independent and
// each holds at most one descriptor; nil means nothing is shown.
type Modal struct {
	Alert *Alert
	Sheet *Sheet
}
