package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/quad-mesh/quadmesh"
)

func main() {
	var maxFaces int
	var fitmap bool
	var strict bool
	flag.IntVar(&maxFaces, "max-faces", 1000, "maximum number of faces")
	flag.BoolVar(&fitmap, "fitmap", false, "weight diagonals by surface curvature")
	flag.BoolVar(&strict, "strict", false, "verify the mesh after every operation")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: simplify_quads [flags] <input.obj> <output.obj>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	mesh, err := quadmesh.LoadMesh(inputPath)
	essentials.Must(err)
	mesh.Strict = strict

	if n := mesh.HowManyTriangles(); n > 0 {
		log.Printf("Converting %d triangles to quads...", n)
		mesh.TriToQuad()
	}

	log.Printf("Collapsing diagonals (%d faces)...", mesh.NumFaces())
	collapses := mesh.Decimate(maxFaces, fitmap)
	log.Printf(" => %d collapses, %d faces remaining", collapses, mesh.NumFaces())

	log.Println("Saving mesh...")
	essentials.Must(quadmesh.SaveMesh(outputPath, mesh))
}
