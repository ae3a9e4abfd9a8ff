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
	var fitmap bool
	var strict bool
	flag.BoolVar(&fitmap, "fitmap", false, "compute the fitmap of the quad mesh")
	flag.BoolVar(&strict, "strict", false, "verify the mesh after every operation")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: obj_to_quads [flags] <input.obj|input.stl> <output.obj>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	mesh, err := quadmesh.LoadMesh(inputPath)
	essentials.Must(err)
	mesh.Strict = strict
	log.Printf(" => %d vertices, %d faces (%d triangles)", mesh.NumVertices(), mesh.NumFaces(),
		mesh.HowManyTriangles())

	log.Println("Converting to quads...")
	mesh.ToQuadMesh(fitmap)
	log.Printf(" => %d vertices, %d faces (%d triangles)", mesh.NumVertices(), mesh.NumFaces(),
		mesh.HowManyTriangles())

	log.Println("Saving mesh...")
	essentials.Must(quadmesh.SaveMesh(outputPath, mesh))
}
