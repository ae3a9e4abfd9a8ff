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
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_to_stl [flags] <input.obj> <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	mesh, err := quadmesh.LoadMesh(inputPath)
	essentials.Must(err)

	log.Println("Triangulating...")
	triMesh := mesh.Model3D()
	if triMesh.NeedsRepair() {
		log.Println(" => warning: triangulated mesh is not watertight")
	}
	essentials.Must(triMesh.SaveGroupedSTL(outputPath))
}
