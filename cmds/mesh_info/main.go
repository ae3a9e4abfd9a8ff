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
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_info [flags] <input.obj>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading mesh...")
	mesh, err := quadmesh.LoadMesh(inputPath)
	essentials.Must(err)

	fmt.Println("Vertices:", mesh.NumVertices())
	fmt.Println("Edges:", mesh.NumEdges())
	fmt.Println("Faces:", mesh.NumFaces())
	fmt.Println("Triangles:", mesh.HowManyTriangles())
	fmt.Println("Largest face:", mesh.MaxFaceSize())
	fmt.Println("Boundary loops:", mesh.NumHoles())
	fmt.Println("Euler characteristic:", mesh.EulerCharacteristic())
	fmt.Printf("Size: %f x %f x %f\n", mesh.Width(), mesh.Height(), mesh.Depth())
	if err := mesh.CheckCorrectness(); err != nil {
		fmt.Println("Consistency:", err)
	} else {
		fmt.Println("Consistency: ok")
	}
}
