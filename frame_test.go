package timeuse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildFrame(t *testing.T) *Frame {
	id, e := NewCol("id", []int{3, 1, 2})
	assert.Nil(t, e)

	x, e := NewCol("x", []float64{30, 10, 20})
	assert.Nil(t, e)

	name, e := NewCol("name", []string{"c", "a", "b"})
	assert.Nil(t, e)

	frame, e := NewFrame(id, x, name)
	assert.Nil(t, e)

	return frame
}

func TestNewFrame(t *testing.T) {
	frame := buildFrame(t)

	assert.Equal(t, 3, frame.RowCount())
	assert.Equal(t, 3, frame.ColumnCount())
	assert.Equal(t, []string{"id", "x", "name"}, frame.ColumnNames())

	_, e := NewFrame()
	assert.NotNil(t, e)

	// a non-nil empty column slice is rejected the same way
	var none []*Col
	_, e = NewFrame(none...)
	assert.NotNil(t, e)

	none = make([]*Col, 0)
	_, e = NewFrame(none...)
	assert.NotNil(t, e)

	// column lengths must agree
	short, e := NewCol("short", []int{1})
	assert.Nil(t, e)

	long, e := NewCol("long", []int{1, 2})
	assert.Nil(t, e)

	_, e = NewFrame(short, long)
	assert.NotNil(t, e)
}

func TestFrameColumn(t *testing.T) {
	frame := buildFrame(t)

	col, e := frame.Column("x")
	assert.Nil(t, e)
	assert.Equal(t, DTfloat, col.DataType())

	_, e = frame.Column("missing")
	assert.NotNil(t, e)
}

func TestFrameNext(t *testing.T) {
	frame := buildFrame(t)

	var names []string
	for c := frame.Next(true); c != nil; c = frame.Next(false) {
		names = append(names, c.Name(""))
	}

	assert.Equal(t, []string{"id", "x", "name"}, names)

	// a second pass restarts cleanly
	c := frame.Next(true)
	assert.Equal(t, "id", c.Name(""))
}

func TestFrameAppendColumn(t *testing.T) {
	frame := buildFrame(t)

	y, e := NewCol("y", []float64{1, 2, 3})
	assert.Nil(t, e)
	assert.Nil(t, frame.AppendColumn(y))
	assert.Equal(t, 4, frame.ColumnCount())

	// duplicate name
	dup, e := NewCol("x", []float64{1, 2, 3})
	assert.Nil(t, e)
	assert.NotNil(t, frame.AppendColumn(dup))

	// wrong length
	short, e := NewCol("z", []float64{1})
	assert.Nil(t, e)
	assert.NotNil(t, frame.AppendColumn(short))
}

func TestFrameKeepDrop(t *testing.T) {
	frame := buildFrame(t)

	kept, e := frame.KeepColumns("name", "id")
	assert.Nil(t, e)
	assert.Equal(t, []string{"name", "id"}, kept.ColumnNames())

	_, e = frame.KeepColumns("nope")
	assert.NotNil(t, e)

	assert.Nil(t, frame.DropColumns("x"))
	assert.Equal(t, []string{"id", "name"}, frame.ColumnNames())

	assert.NotNil(t, frame.DropColumns("x"))
}

func TestFrameSort(t *testing.T) {
	frame := buildFrame(t)

	assert.Nil(t, frame.Sort("id"))

	id, _ := frame.Column("id")
	assert.Equal(t, []int{1, 2, 3}, id.Data().AsInt())

	// the other columns move with the keys
	x, _ := frame.Column("x")
	assert.Equal(t, []float64{10, 20, 30}, x.Data().AsFloat())

	name, _ := frame.Column("name")
	assert.Equal(t, []string{"a", "b", "c"}, name.Data().AsString())

	assert.NotNil(t, frame.Sort("nope"))
}

func TestFrameSortMultiKey(t *testing.T) {
	g, e := NewCol("g", []int{2, 1, 2, 1})
	assert.Nil(t, e)

	v, e := NewCol("v", []float64{1, 4, 0, 3})
	assert.Nil(t, e)

	frame, e := NewFrame(g, v)
	assert.Nil(t, e)

	assert.Nil(t, frame.Sort("g", "v"))
	assert.Equal(t, []int{1, 1, 2, 2}, g.Data().AsInt())
	assert.Equal(t, []float64{3, 4, 0, 1}, v.Data().AsFloat())
}

func TestFrameCopy(t *testing.T) {
	frame := buildFrame(t)
	cp := frame.Copy()

	// mutating the copy leaves the original alone
	x, _ := cp.Column("x")
	x.Data().SetFloat(-1, 0)

	orig, _ := frame.Column("x")
	assert.Equal(t, 30.0, orig.Data().AsFloat()[0])
}
