package navstack_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/clock"
	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorIssuesCommands(t *testing.T) {
	c, _ := runningController(t)
	nav := c.Navigator()
	require.True(t, nav.Bound())

	require.NoError(t, nav.To(home))
	require.NoError(t, nav.To(detail("1")))
	require.NoError(t, nav.To(detail("2")))
	require.NoError(t, nav.Off(detail("3")))
	flush(t, c)
	assert.Equal(t, []route.Identity{home, detail("1"), detail("3")}, c.Routes())

	require.NoError(t, nav.Until(route.Is(appRoute{Kind: "home"})))
	flush(t, c)
	assert.Equal(t, []route.Identity{home}, c.Routes())

	require.NoError(t, nav.OffUntil(settings, route.Never))
	flush(t, c)
	assert.Equal(t, []route.Identity{settings}, c.Routes())

	require.NoError(t, nav.OffAll(home))
	require.NoError(t, nav.To(settings))
	require.NoError(t, nav.OffAllToRoot())
	flush(t, c)
	assert.Empty(t, c.Routes())
}

func TestNavigatorToWithResult(t *testing.T) {
	c, _ := runningController(t)
	nav := c.Navigator()

	got := make(chan any, 1)
	require.NoError(t, nav.ToWithResult(detail("pick"), func(v any) { got <- v }))
	require.NoError(t, nav.Back("chosen"))
	flush(t, c)

	assert.Equal(t, "chosen", <-got)
	assert.Empty(t, c.Routes())
}

func TestNavigatorSnackbarDefaults(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC))
	c := newController(t, navstack.Options{Clock: fc, NotificationDuration: 5 * time.Second})
	startController(t, c)
	nav := c.Navigator()

	require.NoError(t, nav.Snackbar("Navigating to Detail", "You clicked the detail button!", 0))
	require.NoError(t, nav.Snackbar("Third message", "", time.Second))
	flush(t, c)

	q := c.Notifications()
	require.Len(t, q, 2)
	assert.Equal(t, 5*time.Second, q[0].Duration)
	assert.Equal(t, "You clicked the detail button!", q[0].ExpandedMessage)
	assert.Equal(t, time.Second, q[1].Duration)

	require.NoError(t, nav.NotificationDismiss(q[1].ID))
	flush(t, c)
	assert.Len(t, c.Notifications(), 1)
}

func TestNavigatorSnackbarLocalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "active.de.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Saved]\nother = \"{{.Name}} gespeichert\"\n"), 0644))

	c := newController(t, navstack.Options{Locale: "de", MessageFiles: []string{path}})
	startController(t, c)
	nav := c.Navigator()

	require.NoError(t, nav.SnackbarLocalized("Saved", map[string]any{"Name": "Notiz"}, 0))
	flush(t, c)

	require.Len(t, c.Notifications(), 1)
	assert.Equal(t, "Notiz gespeichert", c.Notifications()[0].Message)
	assert.Equal(t, "Cancel", nav.CancelLabel(), "falls back to English")
}

func TestNavigatorModal(t *testing.T) {
	c, _ := runningController(t)
	nav := c.Navigator()

	saved := false
	require.NoError(t, nav.Alert("Settings Change", "Would you like to save changes?",
		navstack.DefaultButton("Save", func() { saved = true }), nil))
	require.NoError(t, nav.Sheet("bottom sheet"))
	flush(t, c)

	m := c.Modal()
	require.NotNil(t, m.Alert)
	require.NotNil(t, m.Sheet)
	assert.Equal(t, "Settings Change", m.Alert.Title)
	assert.Equal(t, "bottom sheet", m.Sheet.Content)
	assert.True(t, m.Sheet.SwipeToDismiss)
	assert.False(t, m.Sheet.FullScreen)

	primary, secondary := m.Alert.Buttons(nav.CancelLabel())
	primary.Press()
	secondary.Press()
	assert.True(t, saved)
	assert.Equal(t, navstack.ButtonRoleCancel, secondary.Role)
	assert.Equal(t, "Cancel", secondary.Label)

	require.NoError(t, nav.SheetDismiss())
	require.NoError(t, nav.AlertDismiss())
	flush(t, c)
	assert.Nil(t, c.Modal().Alert)
	assert.Nil(t, c.Modal().Sheet)
}

func TestNavigatorFromContext(t *testing.T) {
	c, _ := runningController(t)

	ctx := navstack.WithNavigator(context.Background(), c.Navigator())
	nav := navstack.FromContext(ctx)
	require.True(t, nav.Bound())
	require.NoError(t, nav.To(home))
	flush(t, c)
	assert.Equal(t, []route.Identity{home}, c.Routes())
}

func TestNavigatorZeroValueIgnoresCommands(t *testing.T) {
	nav := navstack.FromContext(context.Background())
	assert.False(t, nav.Bound())
	assert.NoError(t, nav.To(home))
	assert.NoError(t, nav.Back(nil))
	assert.NoError(t, nav.Snackbar("dropped", "", 0))
	assert.NoError(t, nav.SnackbarLocalized("Dropped", nil, 0))
	assert.Equal(t, "Cancel", nav.CancelLabel())
}

func TestNavigatorAfterClose(t *testing.T) {
	c := newController(t, navstack.Options{})
	c.Close()
	assert.ErrorIs(t, c.Navigator().To(home), navstack.ErrClosed)
}

func TestAlertButtonsWithSecondary(t *testing.T) {
	cancel := navstack.CancelButton("Keep", nil)
	a := navstack.NewAlert("Delete?", "", navstack.DestructiveButton("Delete", nil), &cancel)

	primary, secondary := a.Buttons("Cancel")
	assert.Equal(t, "Delete", primary.Label)
	assert.Equal(t, "destructive", primary.Role.String())
	assert.Equal(t, "Keep", secondary.Label)
	assert.NotEqual(t, a.ID, navstack.NewAlert("Delete?", "", primary, nil).ID)

	s := navstack.NewSheet(nil, navstack.WithFullScreen(), navstack.WithSwipeToDismiss(false))
	assert.True(t, s.FullScreen)
	assert.False(t, s.SwipeToDismiss)
}
