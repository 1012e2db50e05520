package timeuse

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
	u "github.com/invertedv/utilities"
)

type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

type Opt func(plot *Plot) *Plot

func NewPlot(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

func WithWidth(w float64) Opt {
	if w < 0.0 {
		panic(fmt.Errorf("negative width"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		return p
	}
}

func WithHeight(h float64) Opt {
	if h < 0.0 {
		panic(fmt.Errorf("negative height"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Height = h
		return p
	}
}

func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

func WithLegend(show bool) Opt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}

		return p
	}
}

func WithXlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}

		if p.Lay.Xaxis.Title == nil {
			p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{}
		}

		p.Lay.Xaxis.Title.Text = label
		return p
	}
}

func WithYlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		if p.Lay.Yaxis.Title == nil {
			p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{}
		}

		p.Lay.Yaxis.Title.Text = label
		return p
	}
}

func (p *Plot) PlotXY(x, y *Col, seriesName, color string) error {
	if x.DataType() == DTstring || y.DataType() == DTstring {
		return fmt.Errorf("xy plots require numeric columns")
	}

	tr := &grob.Scatter{Name: seriesName, X: x.Data().AsFloat(), Y: y.Data().AsFloat(),
		Mode: grob.ScatterModeLines, Line: &grob.ScatterLine{Color: color}}

	p.Fig.AddTraces(tr)

	return nil
}

// Histogram adds a histogram trace of x.
func (p *Plot) Histogram(x *Col, seriesName, color string) error {
	if x.DataType() == DTstring {
		return fmt.Errorf("histograms require numeric columns")
	}

	tr := &grob.Histogram{Name: seriesName, X: x.Data().AsFloat(),
		Marker: &grob.HistogramMarker{Color: color}}

	p.Fig.AddTraces(tr)

	return nil
}

// Bar adds a bar trace: one bar per label.
func (p *Plot) Bar(labels []string, heights []float64, seriesName, color string) error {
	if len(labels) != len(heights) {
		return fmt.Errorf("labels and heights must be same length in Plot.Bar")
	}

	tr := &grob.Bar{Name: seriesName, X: labels, Y: heights,
		Marker: &grob.BarMarker{Color: color}}

	p.Fig.AddTraces(tr)

	return nil
}

// Save renders the figure as a self-contained HTML file.
func (p *Plot) Save(fileName string) error {
	offline.ToHtml(p.Fig, fileName)

	return nil
}

// Show renders the figure and opens it in a browser.
func (p *Plot) Show(browser, fileName string) error {
	const nameLength = 8

	if browser == "" {
		browser = "xdg-open"
	}

	tmpFile := false
	if fileName == "" {
		fileName = tempFile("html", nameLength)
		tmpFile = true
	}

	offline.ToHtml(p.Fig, fileName)

	cmd := exec.Command(browser, fileName)
	if e := cmd.Start(); e != nil {
		return e
	}

	time.Sleep(time.Second) // need to pause while browser loads graph

	if tmpFile {
		if e := os.Remove(fileName); e != nil {
			return e
		}
	}

	return nil
}

// tempFile produces a random temp file name in the system's tmp location.
func tempFile(ext string, length int) string {
	return u.Slash(os.TempDir()) + "tmp" + u.RandomLetters(length) + "." + ext
}
