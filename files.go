package timeuse

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// All code writing frames to files is here

const (
	Sep         = ','
	EOL         = '\n'
	StringDelim = '"'
	FloatFormat = "%.4f"
	Header      = true
)

type Files struct {
	EOL         byte
	Sep         byte
	StringDelim byte
	FloatFormat string
	Header      bool

	file     *os.File
	fileName string
}

func NewFiles() *Files {
	f := &Files{
		EOL:         byte(EOL),
		Sep:         byte(Sep),
		StringDelim: byte(StringDelim),
		FloatFormat: FloatFormat,
		Header:      Header,
	}

	return f
}

func (f *Files) Create(fileName string) error {
	var e error
	f.fileName = fileName
	f.file, e = os.Create(fileName)

	return e
}

func (f *Files) FileName() string {
	return f.fileName
}

func (f *Files) Close() error {
	if f.file != nil {
		return f.file.Close()
	}

	return fmt.Errorf("no open files")
}

func (f *Files) WriteLine(v []any) error {
	var line []byte
	for ind := 0; ind < len(v); ind++ {
		var lx []byte
		switch d := v[ind].(type) {
		case float64:
			lx = []byte(fmt.Sprintf(f.FloatFormat, d))
			if math.IsNaN(d) {
				lx = []byte{}
			}
		case int:
			lx = []byte(fmt.Sprintf("%v", d))
		case string:
			lx = []byte(d)
			lx = append([]byte{f.StringDelim}, lx...)
			lx = append(lx, f.StringDelim)
		default:
			lx = []byte("#err#")
		}
		line = append(line, lx...)
		if ind < len(v)-1 {
			line = append(line, f.Sep)
		}
	}
	if _, e := f.file.Write(line); e != nil {
		return e
	}
	_, e := f.file.Write([]byte{f.EOL})

	return e
}

func (f *Files) writeHeader(fieldNames []string) error {
	if !f.Header {
		return nil
	}

	_, e := f.file.WriteString(strings.Join(fieldNames, string(rune(f.Sep))) + string(rune(f.EOL)))

	return e
}

// Save writes the frame to fileName as delimited text. Missing floats (NaN)
// are written as empty fields.
func (f *Files) Save(fileName string, frame *Frame) error {
	if e := f.Create(fileName); e != nil {
		return e
	}
	defer func() { _ = f.Close() }()

	if e := f.writeHeader(frame.ColumnNames()); e != nil {
		return e
	}

	for row := 0; row < frame.RowCount(); row++ {
		var v []any
		for c := frame.Next(true); c != nil; c = frame.Next(false) {
			v = append(v, c.Data().Element(row))
		}

		if e := f.WriteLine(v); e != nil {
			return e
		}
	}

	return nil
}
