package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/yui/pkg/yui"
	"github.com/odvcencio/yui/pkg/yui/yuitest"
)

type fixture struct {
	ui     *yui.UI
	d      *yui.Dialog
	srv    *Server
	ok     *yui.PushButton
	name   *yui.InputField
	agree  *yui.CheckBox
	colors *yui.SelectionBox
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	ui, _ := yuitest.Install(t, yuitest.Blocking())
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	vbox, err := f.CreateVBox(d)
	require.NoError(t, err)
	name, err := f.CreateInputField(vbox, "&Name")
	require.NoError(t, err)
	agree, err := f.CreateCheckBox(vbox, "I &agree", false)
	require.NoError(t, err)
	colors, err := f.CreateSelectionBox(vbox, "Colors")
	require.NoError(t, err)
	require.NoError(t, colors.AddItems(yui.NewItem("red"), yui.NewItem("green")))
	ok, err := f.CreatePushButton(vbox, "&OK")
	require.NoError(t, err)
	ok.SetID("ok")

	return &fixture{
		ui: ui, d: d, srv: New(ui, opts...),
		ok: ok, name: name, agree: agree, colors: colors,
	}
}

// do serves req on another goroutine while this one pumps the dialog, and
// returns the response with every event delivered meanwhile.
func (fx *fixture) do(t *testing.T, method, target string) (*httptest.ResponseRecorder, []*yui.Event) {
	t.Helper()
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fx.srv.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	}()

	var events []*yui.Event
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-done:
			for fx.d.HasPendingEvent() {
				ev, err := fx.d.WaitForEvent(1)
				require.NoError(t, err)
				events = append(events, ev)
			}
			return rec, events
		case <-deadline:
			t.Fatal("request was never served")
		default:
		}
		ev, err := fx.d.WaitForEvent(10)
		require.NoError(t, err)
		if ev.Type != yui.TimeoutEvent {
			events = append(events, ev)
		}
	}
}

func TestPressButtonPostsActivation(t *testing.T) {
	fx := newFixture(t)

	rec, events := fx.do(t, http.MethodPost, "/v1/widgets?label=OK&action=press")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var info WidgetInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "ok", info.ID)
	assert.Equal(t, "PushButton", info.Class)

	require.Len(t, events, 1)
	assert.True(t, events[0].IsActivation(fx.ok))
}

func TestEnterTextAndCheck(t *testing.T) {
	fx := newFixture(t)

	rec, _ := fx.do(t, http.MethodPost, "/v1/widgets?label=Name&action=enter_text&value=Ada")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Ada", fx.name.Value())

	rec, _ = fx.do(t, http.MethodPost, "/v1/widgets?label=I+agree&action=toggle")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, fx.agree.Value())

	rec, _ = fx.do(t, http.MethodPost, "/v1/widgets?type=SelectionBox&action=select&value=green")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, fx.colors.SelectedItem())
	assert.Equal(t, "green", yui.ItemOf(fx.colors.SelectedItem()).Label())
}

func TestDialogDescribesTree(t *testing.T) {
	fx := newFixture(t)

	rec, _ := fx.do(t, http.MethodGet, "/v1/dialog")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var info DialogInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, fx.d.UUID(), info.UUID)
	require.NotNil(t, info.Root)
	require.Len(t, info.Root.Children, 4)
	assert.Equal(t, "Name", info.Root.Children[0].Label)
	assert.Len(t, info.Root.Children[2].Items, 2)
}

func TestFindWidgets(t *testing.T) {
	fx := newFixture(t)

	rec, _ := fx.do(t, http.MethodGet, "/v1/widgets?type=checkbox")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out []WidgetInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "I agree", out[0].Label)
	assert.Equal(t, false, out[0].Value)
}

func TestRequestErrors(t *testing.T) {
	fx := newFixture(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"missing selector", http.MethodGet, "/v1/widgets", http.StatusBadRequest},
		{"unknown widget", http.MethodGet, "/v1/widgets?label=Nope", http.StatusNotFound},
		{"unknown action", http.MethodPost, "/v1/widgets?label=OK&action=dance", http.StatusBadRequest},
		{"wrong widget", http.MethodPost, "/v1/widgets?label=OK&action=check", http.StatusBadRequest},
		{"bad item", http.MethodPost, "/v1/widgets?type=SelectionBox&action=select&value=blue", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.target == "/v1/widgets" {
				rec := httptest.NewRecorder()
				fx.srv.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
				assert.Equal(t, tt.status, rec.Code)
				return
			}
			rec, _ := fx.do(t, tt.method, tt.target)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestUnservedRequestTimesOut(t *testing.T) {
	fx := newFixture(t, WithInvokeTimeout(20*time.Millisecond))

	rec := httptest.NewRecorder()
	fx.srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dialog", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthz(t *testing.T) {
	fx := newFixture(t)

	rec := httptest.NewRecorder()
	fx.srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}
