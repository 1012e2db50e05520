// Package timeuse holds the tabular core shared by the survey pipeline:
// typed vectors, named columns, an in-memory frame, CSV output and plots.
package timeuse

import (
	"fmt"
	"sort"

	u "github.com/invertedv/utilities"
)

// Frame is an ordered collection of equal-length columns.
type Frame struct {
	head    *colNode
	current *colNode

	by []*Col
}

type colNode struct {
	col *Col

	prior *colNode
	next  *colNode
}

func NewFrame(cols ...*Col) (*Frame, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns in NewFrame")
	}

	rowCount := cols[0].Len()

	var head, priorNode *colNode
	for ind := 0; ind < len(cols); ind++ {
		if cols[ind].Len() != rowCount {
			return nil, fmt.Errorf("length mismatch: column %s has %d rows, expected %d",
				cols[ind].Name(""), cols[ind].Len(), rowCount)
		}

		node := &colNode{
			col: cols[ind],

			prior: priorNode,
			next:  nil,
		}

		if priorNode != nil {
			priorNode.next = node
		}

		priorNode = node

		if ind == 0 {
			head = node
		}
	}

	return &Frame{head: head}, nil
}

// Next iterates through the columns, returning nil after the last one.
func (f *Frame) Next(reset bool) *Col {
	if reset || f.current == nil {
		f.current = f.head
		return f.current.col
	}

	if f.current.next == nil {
		f.current = nil
		return nil
	}

	f.current = f.current.next
	return f.current.col
}

func (f *Frame) RowCount() int {
	return f.head.col.Len()
}

func (f *Frame) ColumnCount() int {
	cols := 0
	for c := f.head; c != nil; c = c.next {
		cols++
	}

	return cols
}

func (f *Frame) ColumnNames() []string {
	var names []string

	for h := f.head; h != nil; h = h.next {
		names = append(names, h.col.Name(""))
	}

	return names
}

func (f *Frame) Column(colName string) (col *Col, err error) {
	for h := f.head; h != nil; h = h.next {
		if h.col.Name("") == colName {
			return h.col, nil
		}
	}

	return nil, fmt.Errorf("column %s not found", colName)
}

func (f *Frame) AppendColumn(col *Col) error {
	if u.Has(col.Name(""), "", f.ColumnNames()...) {
		return fmt.Errorf("duplicate column name: %s", col.Name(""))
	}

	if col.Len() != f.RowCount() {
		return fmt.Errorf("length mismatch: frame - %d, append col - %d", f.RowCount(), col.Len())
	}

	var tail *colNode
	for tail = f.head; tail.next != nil; tail = tail.next {
	}

	node := &colNode{
		col:   col,
		prior: tail,
		next:  nil,
	}

	tail.next = node

	return nil
}

func (f *Frame) node(colName string) (node *colNode, err error) {
	for h := f.head; h != nil; h = h.next {
		if h.col.Name("") == colName {
			return h, nil
		}
	}

	return nil, fmt.Errorf("column %s not found", colName)
}

func (f *Frame) DropColumns(colNames ...string) error {
	for _, cName := range colNames {
		var (
			nd *colNode
			e  error
		)

		if nd, e = f.node(cName); e != nil {
			return e
		}

		if nd == f.head {
			if f.head.next == nil {
				f.head = nil
				return fmt.Errorf("no columns left")
			}

			f.head = f.head.next
			f.head.prior = nil
			continue
		}

		nd.prior.next = nd.next
		if nd.next != nil {
			nd.next.prior = nd.prior
		}
	}

	return nil
}

// KeepColumns returns a new Frame with only colNames, in that order. The
// columns are shared, not copied.
func (f *Frame) KeepColumns(colNames ...string) (*Frame, error) {
	var subHead, tail *colNode

	for ind := 0; ind < len(colNames); ind++ {
		var (
			col *Col
			err error
		)

		if col, err = f.Column(colNames[ind]); err != nil {
			return nil, err
		}

		newNode := &colNode{
			col:   col,
			prior: nil,
			next:  nil,
		}

		if subHead == nil {
			subHead, tail = newNode, newNode
			continue
		}

		newNode.prior = tail
		tail.next = newNode
		tail = newNode
	}

	return &Frame{head: subHead}, nil
}

// Copy deep-copies the frame.
func (f *Frame) Copy() *Frame {
	var cols []*Col
	for c := f.Next(true); c != nil; c = f.Next(false) {
		cols = append(cols, c.Copy())
	}

	// cannot fail: lengths agree by construction
	fNew, _ := NewFrame(cols...)

	return fNew
}

// ***************** sorting *****************

// Len is required by sort.
func (f *Frame) Len() int {
	return f.RowCount()
}

func (f *Frame) Less(i, j int) bool {
	for ind := 0; ind < len(f.by); ind++ {
		v := f.by[ind].Data()

		if v.Less(i, j) {
			return true
		}

		if v.Less(j, i) {
			return false
		}

		// equal -- keep checking
	}

	return false
}

func (f *Frame) Swap(i, j int) {
	for h := f.Next(true); h != nil; h = f.Next(false) {
		h.Data().Swap(i, j)
	}
}

// Sort orders the rows by the key columns, ascending.
func (f *Frame) Sort(keys ...string) error {
	var by []*Col

	for ind := 0; ind < len(keys); ind++ {
		var (
			x *Col
			e error
		)

		if x, e = f.Column(keys[ind]); e != nil {
			return e
		}

		by = append(by, x)
	}

	f.by = by
	sort.Stable(f)
	f.by = nil

	return nil
}

func (f *Frame) String() string {
	const maxShow = 10

	header := f.ColumnNames()

	var cols []any
	n := f.RowCount()
	if n > maxShow {
		n = maxShow
	}

	for c := f.Next(true); c != nil; c = f.Next(false) {
		switch c.DataType() {
		case DTfloat:
			cols = append(cols, c.Data().AsFloat()[:n])
		case DTint:
			cols = append(cols, c.Data().AsInt()[:n])
		case DTstring:
			cols = append(cols, c.Data().AsString()[:n])
		}
	}

	out := prettyPrint(header, cols...)
	if f.RowCount() > maxShow {
		out += fmt.Sprintf("... %d rows total\n", f.RowCount())
	}

	return out
}
