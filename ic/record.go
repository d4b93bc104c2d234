package ic

//Record identifies one residue and carries the internal-coordinate values
//resolved for it.
type Record struct {
	Protein     string
	Model       int
	Chain       string
	Position    int
	ResidueName string //3-letter name, e.g. ALA or PRO
	Coordinates []Coordinate
}
