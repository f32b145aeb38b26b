package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/yui"
)

// WidgetInfo is the JSON form of a widget.
type WidgetInfo struct {
	ID       string       `json:"id,omitempty"`
	Class    string       `json:"class"`
	Label    string       `json:"label,omitempty"`
	Value    any          `json:"value,omitempty"`
	Enabled  bool         `json:"enabled"`
	Visible  bool         `json:"visible"`
	Focused  bool         `json:"focused,omitempty"`
	Items    []ItemInfo   `json:"items,omitempty"`
	Children []WidgetInfo `json:"children,omitempty"`
}

// ItemInfo is the JSON form of a selection item.
type ItemInfo struct {
	Label    string     `json:"label"`
	Selected bool       `json:"selected,omitempty"`
	Children []ItemInfo `json:"children,omitempty"`
}

// DialogInfo is the JSON form of a dialog.
type DialogInfo struct {
	UUID  string      `json:"uuid"`
	Type  string      `json:"type"`
	Title string      `json:"title,omitempty"`
	Root  *WidgetInfo `json:"root,omitempty"`
}

type propertyGetter interface {
	GetProperty(name string) (yui.PropertyValue, error)
}

type itemLister interface {
	Items() []yui.SelectionItem
}

func describe(w yui.Widget, focused yui.Widget, deep bool) WidgetInfo {
	info := WidgetInfo{
		ID:      w.ID(),
		Class:   w.Kind().String(),
		Enabled: w.EffectivelyEnabled(),
		Visible: yui.EffectivelyVisible(w),
		Focused: w == focused,
	}
	if l, ok := w.(yui.Labeler); ok {
		info.Label = yui.NormalizeLabel(l.Label())
	}
	if pg, ok := w.(propertyGetter); ok {
		if v, err := pg.GetProperty("Value"); err == nil {
			switch v.Type() {
			case yui.IntProperty:
				info.Value = v.Int()
			case yui.BoolProperty:
				info.Value = v.Bool()
			default:
				info.Value = v.String()
			}
		}
	}
	if il, ok := w.(itemLister); ok {
		info.Items = describeItems(il.Items())
	}
	if deep {
		for _, c := range w.Children() {
			info.Children = append(info.Children, describe(c, focused, true))
		}
	}
	return info
}

func describeItems(items []yui.SelectionItem) []ItemInfo {
	out := make([]ItemInfo, 0, len(items))
	for _, si := range items {
		it := yui.ItemOf(si)
		info := ItemInfo{Label: it.Label(), Selected: it.Selected()}
		if n, ok := si.(*yui.TreeItem); ok && len(n.Children()) > 0 {
			kids := make([]yui.SelectionItem, len(n.Children()))
			for i, c := range n.Children() {
				kids[i] = c
			}
			info.Children = describeItems(kids)
		}
		out = append(out, info)
	}
	return out
}

func (s *Server) handleDialog(w http.ResponseWriter, r *http.Request) {
	var (
		info DialogInfo
		err  error
	)
	if ierr := s.onUI(r.Context(), func() {
		var d *yui.Dialog
		d, err = s.ui.CurrentDialog()
		if err != nil {
			return
		}
		info = DialogInfo{UUID: d.UUID(), Type: d.Type().String(), Title: d.Title()}
		if root := d.Root(); root != nil {
			ri := describe(root, d.Focused(), true)
			info.Root = &ri
		}
	}); ierr != nil {
		respondError(w, ierr)
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// selector picks widgets from the query parameters label, id and type.
type selector struct {
	label, id, class string
}

func selectorFrom(r *http.Request) selector {
	q := r.URL.Query()
	return selector{
		label: strings.TrimSpace(q.Get("label")),
		id:    strings.TrimSpace(q.Get("id")),
		class: strings.TrimSpace(q.Get("type")),
	}
}

func (sel selector) empty() bool { return sel.label == "" && sel.id == "" && sel.class == "" }

func (sel selector) match(w yui.Widget) bool {
	if sel.id != "" && w.ID() != sel.id {
		return false
	}
	if sel.class != "" && !strings.EqualFold(w.Kind().String(), sel.class) {
		return false
	}
	if sel.label != "" {
		l, ok := w.(yui.Labeler)
		if !ok || yui.NormalizeLabel(l.Label()) != yui.NormalizeLabel(sel.label) {
			return false
		}
	}
	return true
}

func (s *Server) find(sel selector) ([]yui.Widget, *yui.Dialog, error) {
	d, err := s.ui.CurrentDialog()
	if err != nil {
		return nil, nil, err
	}
	found := d.FindWidgets(func(w yui.Widget) bool {
		_, isDialog := w.(*yui.Dialog)
		return !isDialog && sel.match(w)
	})
	if len(found) == 0 {
		return nil, d, yerrors.New(yerrors.ErrCodeWidgetNotFound, "no widget matches").
			WithContext("label", sel.label).WithContext("id", sel.id).WithContext("type", sel.class)
	}
	return found, d, nil
}

func (s *Server) handleFindWidgets(w http.ResponseWriter, r *http.Request) {
	sel := selectorFrom(r)
	if sel.empty() {
		respondError(w, yerrors.New(yerrors.ErrCodeInvalidInput, "one of label, id or type is required"))
		return
	}
	var (
		out []WidgetInfo
		err error
	)
	if ierr := s.onUI(r.Context(), func() {
		var found []yui.Widget
		var d *yui.Dialog
		found, d, err = s.find(sel)
		for _, fw := range found {
			out = append(out, describe(fw, d.Focused(), false))
		}
	}); ierr != nil {
		respondError(w, ierr)
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleWidgetAction(w http.ResponseWriter, r *http.Request) {
	sel := selectorFrom(r)
	if sel.empty() {
		respondError(w, yerrors.New(yerrors.ErrCodeInvalidInput, "one of label, id or type is required"))
		return
	}
	action := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("action")))
	value := r.URL.Query().Get("value")
	var (
		info WidgetInfo
		err  error
	)
	if ierr := s.onUI(r.Context(), func() {
		var found []yui.Widget
		var d *yui.Dialog
		found, d, err = s.find(sel)
		if err != nil {
			return
		}
		target := found[0]
		if err = perform(target, action, value); err != nil {
			return
		}
		info = describe(target, d.Focused(), false)
	}); ierr != nil {
		respondError(w, ierr)
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

// respondError maps error codes to HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	code := yerrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case yerrors.ErrCodeWidgetNotFound, yerrors.ErrCodeNoDialog:
		status = http.StatusNotFound
	case yerrors.ErrCodeInvalidInput, yerrors.ErrCodeInvalidWidget, yerrors.ErrCodeUnsupportedWidget:
		status = http.StatusBadRequest
	case yerrors.ErrCodeBackendFailure:
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, struct {
		Error     string `json:"error"`
		Status    int    `json:"status"`
		Code      string `json:"code,omitempty"`
		Timestamp string `json:"timestamp"`
	}{
		Error:     err.Error(),
		Status:    status,
		Code:      string(code),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func parseInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, yerrors.Wrap(err, yerrors.ErrCodeInvalidInput, "value must be an integer")
	}
	return n, nil
}
