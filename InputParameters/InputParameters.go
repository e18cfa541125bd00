package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. Mesh fields drive the
// decomposition; the remaining fields are passed through to the physics
// and driver layers.
type InputParameters struct {
	Probname      string  `yaml:"Probname"`
	Meshtype      string  `yaml:"Meshtype"` // "pie", "rect" or "hex"
	NzonesX       int     `yaml:"NzonesX"`
	NzonesY       int     `yaml:"NzonesY"`
	LenX          float64 `yaml:"LenX"`
	LenY          float64 `yaml:"LenY"`
	NumSubregions int     `yaml:"NumSubregions"`
	Cstop         int     `yaml:"Cstop"` // Cycle count limit for the driver
	Tstop         float64 `yaml:"Tstop"` // Simulation end time for the driver
	Gamma         float64 `yaml:"Gamma"` // Ideal gas ratio of specific heats
	Ssmin         float64 `yaml:"Ssmin"` // Minimum sound speed floor
	Dtinit        float64 `yaml:"Dtinit"`
	Dtmax         float64 `yaml:"Dtmax"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Probname\n", ip.Probname)
	fmt.Printf("[%s]\t\t\t= Meshtype\n", ip.Meshtype)
	fmt.Printf("[%d x %d]\t\t= Zones\n", ip.NzonesX, ip.NzonesY)
	fmt.Printf("%8.5f\t\t= LenX\n", ip.LenX)
	fmt.Printf("%8.5f\t\t= LenY\n", ip.LenY)
	fmt.Printf("[%d]\t\t\t\t= NumSubregions\n", ip.NumSubregions)
	fmt.Printf("%8.5f\t\t= Tstop\n", ip.Tstop)
	fmt.Printf("[%d]\t\t\t\t= Cstop\n", ip.Cstop)
}
