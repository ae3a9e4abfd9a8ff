package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"github.com/unixpickle/quad-mesh/quadmesh"
)

func main() {
	var gridSize int
	var imageSize int
	var fps float64
	var frames int
	var maxFaces int
	var normalize bool
	flag.IntVar(&gridSize, "grid-size", 3, "grid size (used for rows and columns)")
	flag.IntVar(&imageSize, "image-size", 300, "size of each image in the grid")
	flag.Float64Var(&fps, "fps", 10.0, "FPS for GIF outputs")
	flag.IntVar(&frames, "frames", 20, "total number of frames for GIF outputs")
	flag.IntVar(&maxFaces, "max-faces", 0, "if positive, decimate to this many faces before rendering")
	flag.BoolVar(&normalize, "normalize", false, "center the mesh and scale it into the unit cube")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: render_mesh [flags] <input.obj> <output.png|output.gif>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	mesh, err := quadmesh.LoadMesh(inputPath)
	essentials.Must(err)
	if mesh.NumFaces() == 0 {
		essentials.Die("mesh has no faces")
	}

	if maxFaces > 0 && mesh.NumFaces() > maxFaces {
		if n := mesh.HowManyTriangles(); n > 0 {
			log.Printf("Converting %d triangles to quads...", n)
			mesh.TriToQuad()
		}
		log.Printf("Decimating %d faces...", mesh.NumFaces())
		n := mesh.Decimate(maxFaces, false)
		log.Printf(" - %d collapses, %d faces left", n, mesh.NumFaces())
	}
	if normalize {
		transformVertices(mesh, mesh.ModelMatrix())
	}

	log.Println("Creating renderable object...")
	object := render3d.Objectify(model3d.MeshToCollider(mesh.Model3D()), nil)

	log.Println("Rendering...")
	if strings.ToLower(filepath.Ext(outputPath)) == ".gif" {
		err = render3d.SaveRotatingGIF(outputPath, object, model3d.Z(1),
			model3d.YZ(-1, 0.1).Normalize(), imageSize, frames, fps, nil)
	} else {
		err = render3d.SaveRandomGrid(outputPath, object, gridSize, gridSize, imageSize, nil)
	}
	essentials.Must(err)
}

func transformVertices(mesh *quadmesh.Mesh, mat mgl64.Mat4) {
	for i, v := range mesh.Vertices {
		p := mat.Mul4x1(mgl64.Vec4{v.Coords.X, v.Coords.Y, v.Coords.Z, 1})
		mesh.Vertices[i].Coords = model3d.XYZ(p[0], p[1], p[2])
	}
}
