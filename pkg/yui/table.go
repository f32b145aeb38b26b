package yui

import (
	yerrors "github.com/odvcencio/yui/pkg/errors"
)

// TableColumn describes one table column.
type TableColumn struct {
	Header   string
	Align    Alignment
	CheckBox bool
}

// TableHeader is the ordered column list of a table.
type TableHeader struct {
	columns []TableColumn
}

// NewTableHeader builds a header with one left-aligned column per label.
func NewTableHeader(headers ...string) *TableHeader {
	h := &TableHeader{}
	for _, l := range headers {
		h.AddColumn(l, AlignBegin)
	}
	return h
}

// AddColumn appends a text column.
func (h *TableHeader) AddColumn(header string, align Alignment) *TableHeader {
	h.columns = append(h.columns, TableColumn{Header: header, Align: align})
	return h
}

// AddCheckBoxColumn appends a column of user-checkable cells.
func (h *TableHeader) AddCheckBoxColumn(header string) *TableHeader {
	h.columns = append(h.columns, TableColumn{Header: header, Align: AlignCenter, CheckBox: true})
	return h
}

// Columns returns the column definitions.
func (h *TableHeader) Columns() []TableColumn {
	out := make([]TableColumn, len(h.columns))
	copy(out, h.columns)
	return out
}

// ColumnCount returns the number of columns.
func (h *TableHeader) ColumnCount() int { return len(h.columns) }

// HasCheckBoxColumn reports whether any column holds check boxes.
func (h *TableHeader) HasCheckBoxColumn() bool {
	for _, c := range h.columns {
		if c.CheckBox {
			return true
		}
	}
	return false
}

// IsCheckBoxColumn reports whether column col holds check boxes.
func (h *TableHeader) IsCheckBoxColumn(col int) bool {
	return col >= 0 && col < len(h.columns) && h.columns[col].CheckBox
}

// Table shows rows of cells under a header.
type Table struct {
	SelectionWidget
	header      *TableHeader
	keepSorting bool
}

func acceptTableItem(it SelectionItem) bool {
	_, ok := it.(*TableItem)
	return ok
}

func newTable(ui *UI, header *TableHeader, multi bool) *Table {
	if header == nil {
		header = NewTableHeader()
	}
	if header.HasCheckBoxColumn() {
		multi = false
	}
	t := &Table{header: header}
	t.initSelection(t, ui, KindTable, "", multi, acceptTableItem)
	t.stretch = [2]bool{true, true}
	return t
}

func (t *Table) focusable() {}

// Header returns the column definitions.
func (t *Table) Header() *TableHeader { return t.header }

// Rows returns the table rows.
func (t *Table) Rows() []*TableItem {
	out := make([]*TableItem, 0, len(t.items))
	for _, it := range t.items {
		out = append(out, it.(*TableItem))
	}
	return out
}

// SelectedRow returns the first selected row, or nil.
func (t *Table) SelectedRow() *TableItem {
	if it, ok := t.SelectedItem().(*TableItem); ok {
		return it
	}
	return nil
}

// KeepSorting reports whether rows keep insertion order.
func (t *Table) KeepSorting() bool { return t.keepSorting }

// SetKeepSorting disables interactive sorting.
func (t *Table) SetKeepSorting(on bool) { t.keepSorting = on }

// SetCellLabel changes one cell and updates the realized table.
func (t *Table) SetCellLabel(row *TableItem, col int, label string) error {
	cell, err := t.cell(row, col)
	if err != nil {
		return err
	}
	cell.label = label
	if col == 0 {
		row.label = label
	}
	t.sync(AspectItemState)
	return nil
}

// SetCellChecked sets a check flag without posting an event.
func (t *Table) SetCellChecked(row *TableItem, col int, on bool) error {
	cell, err := t.cell(row, col)
	if err != nil {
		return err
	}
	cell.SetChecked(on)
	t.sync(AspectItemState)
	return nil
}

// UserToggleCell flips a checkable cell for the user and posts value-changed
// when notify is on.
func (t *Table) UserToggleCell(row *TableItem, col int) error {
	cell, err := t.cell(row, col)
	if err != nil {
		return err
	}
	if !cell.checkable && !t.header.IsCheckBoxColumn(col) {
		return invalidWidget(t, "cell is not checkable")
	}
	cell.SetChecked(!cell.checked)
	ev := t.selectionEvent(ValueChanged, row)
	ev.Column = col
	t.post(ev, false)
	return nil
}

func (t *Table) cell(row *TableItem, col int) (*TableCell, error) {
	if row == nil || !t.owns(row) {
		return nil, yerrors.New(yerrors.ErrCodeWidgetNotFound, "row does not belong to this table")
	}
	c := row.Cell(col)
	if c == nil {
		return nil, yerrors.New(yerrors.ErrCodeWidgetNotFound, "no such cell").WithContext("column", col)
	}
	return c, nil
}
