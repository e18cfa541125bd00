/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/npandachg/PENNANT/InputParameters"
	"github.com/npandachg/PENNANT/mesh"
)

type MeshRun struct {
	InputFile string
	Color     int // -1 drives all subregions in a single process
	Dump      bool
	Profile   bool
}

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate per-rank mesh geometry and halo topology",
	Long: `Generate per-rank mesh geometry and halo topology.
Each subregion derives its share of the mesh, the points it shares with
each neighbor and the global point numbering with no communication; with
--color -1 all subregions are generated in-process and cross-checked
against each other`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mr := &MeshRun{}
		if mr.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		mr.Color, _ = cmd.Flags().GetInt("color")
		mr.Dump, _ = cmd.Flags().GetBool("dump")
		mr.Profile, _ = cmd.Flags().GetBool("cpuprofile")
		ip := processMeshInput(mr)
		RunMesh(mr, ip)
	},
}

func processMeshInput(mr *MeshRun) (ip *InputParameters.InputParameters) {
	var (
		err error
	)
	if len(mr.InputFile) == 0 {
		fmt.Println("error: must supply an input parameters file (-I, --inputFile)")
		exampleFile := `
########################################
Probname: "sedovbig"
Meshtype: rect   # pie, rect or hex
NzonesX: 120
NzonesY: 120
LenX: 1.125
LenY: 1.125
NumSubregions: 4
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mr.InputFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("inputFile", "I", "", "YAML file with mesh run parameters")
	MeshCmd.Flags().IntP("color", "c", -1, "subregion to generate, -1 for all")
	MeshCmd.Flags().BoolP("dump", "d", false, "dump points and zone adjacency to stdout")
	MeshCmd.Flags().BoolP("cpuprofile", "p", false, "write a CPU profile for the run")
}

func RunMesh(mr *MeshRun, ip *InputParameters.InputParameters) {
	if mr.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	ip.Print()

	gs, err := mesh.NewGridSpec(ip.Meshtype, ip.NzonesX, ip.NzonesY,
		ip.LenX, ip.LenY, ip.NumSubregions)
	if err != nil {
		log.Fatalf("bad mesh configuration: %v", err)
	}

	colors := make([]int, 0, gs.NumSubregions)
	if mr.Color >= 0 {
		colors = append(colors, mr.Color)
	} else {
		for c := 0; c < gs.NumSubregions; c++ {
			colors = append(colors, c)
		}
	}

	gens := make(map[int]*mesh.Generator)
	halos := make(map[int]*mesh.Halo)
	for _, color := range colors {
		g, err := mesh.NewGenerator(gs, color)
		if err != nil {
			log.Fatalf("subregion %d: %v", color, err)
		}
		lm, err := g.Generate()
		if err != nil {
			log.Fatalf("subregion %d: %v", color, err)
		}
		if err = lm.Validate(); err != nil {
			log.Fatalf("subregion %d: invalid mesh: %v", color, err)
		}
		h, err := g.GenerateHaloPoints()
		if err != nil {
			log.Fatalf("subregion %d: %v", color, err)
		}
		gens[color] = g
		halos[color] = h

		fmt.Printf("--- subregion %d, process index (%d,%d) of %dx%d ---\n",
			color, g.Frame.ProcIndexX, g.Frame.ProcIndexY,
			g.Grid.NumProcX, g.Grid.NumProcY)
		lm.Quality().Print(os.Stdout)
		fmt.Printf("%8d\t= slaved halo points\n", h.NumSlavedPoints())
		fmt.Printf("%8d\t= mastered halo points\n", h.NumMasteredPoints())
		if mr.Dump {
			if _, err = lm.WriteTo(os.Stdout); err != nil {
				log.Fatalf("subregion %d: %v", color, err)
			}
		}
	}

	// with every subregion in hand, cross-check that mirror relations
	// agree on length and on the global identity of every shared point
	if mr.Color < 0 {
		if err = crossCheckHalos(gens, halos); err != nil {
			log.Fatalf("halo cross-check failed: %v", err)
		}
		log.Printf("halo cross-check passed for %d subregions", len(colors))
	}
}

func crossCheckHalos(gens map[int]*mesh.Generator, halos map[int]*mesh.Halo) error {
	for color, h := range halos {
		for _, rel := range h.Slaved {
			mirror := halos[rel.Color].MasteredFor(color)
			if mirror == nil {
				return fmt.Errorf("subregion %d slaved to %d, but %d masters nothing for it",
					color, rel.Color, rel.Color)
			}
			if len(mirror.Points) != len(rel.Points) {
				return fmt.Errorf("subregions %d/%d disagree on relation size: %d vs %d",
					color, rel.Color, len(rel.Points), len(mirror.Points))
			}
			for k := range rel.Points {
				slaveID := gens[color].PointLocalToGlobalID(rel.Points[k])
				masterID := gens[rel.Color].PointLocalToGlobalID(mirror.Points[k])
				if slaveID != masterID {
					return fmt.Errorf("subregions %d/%d disagree on shared point %d: global IDs %d vs %d",
						color, rel.Color, k, slaveID, masterID)
				}
			}
		}
	}
	return nil
}
