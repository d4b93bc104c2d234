package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//RamaPlot collects the phi/psi pairs of matched residues and renders them
//as a Ramachandran scatter. Residues missing either torsion (chain
//termini) contribute no point.
type RamaPlot struct {
	points plotter.XYs
}

//Add records one phi/psi pair, in degrees.
func (rp *RamaPlot) Add(phi, psi float64) {
	rp.points = append(rp.points, plotter.XY{X: phi, Y: psi})
}

//Len returns the number of collected pairs.
func (rp *RamaPlot) Len() int { return len(rp.points) }

//Save renders the scatter to a PNG file. The axes are fixed to the full
//-180..180 torsion range.
func (rp *RamaPlot) Save(title, filename string) error {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	//Constant axes
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	s, err := plotter.NewScatter(rp.points)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 60, G: 90, B: 200, A: 255}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
