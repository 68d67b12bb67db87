package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/newton/io"
	"github.com/phil-mansfield/newton/math/interpolate"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var newtonStr, exampleConfig string
	vars := map[string]*string{
		"Newton":        &newtonStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&newtonStr, "Newton", "",
		"Configuration file for [Newton] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example file of the specified type "+
			"to stdout. Accepted arguments are 'Newton' and 'Samples'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Newton":
		con, err := io.ReadNewtonConfig(newtonStr)
		if err != nil { log.Fatal(err.Error()) }
		newtonMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Newton":
			fmt.Println(io.ExampleNewtonFile)
		case "Samples":
			fmt.Println(io.ExampleSamplesFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Newton' and 'Samples'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// newtonMain fits the samples named in con and writes out whatever con asks
// for.
func newtonMain(con *io.NewtonConfig) {
	fg := setupIO(&con.SharedConfig)
	defer fg.Close()

	samples, err := io.ReadConfigSamples(con)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d samples from %s.", len(samples), con.Input)

	nt := interpolate.NewNewton(interpolate.Capacity(con.MaxSamples))
	if _, err = nt.Load(samples); err != nil {
		log.Fatalf("Could not fit %s: %s", con.Input, err.Error())
	}

	if _, err = nt.Coeffs(con.PrintPolynomial); err != nil {
		log.Fatal(err.Error())
	}

	if len(samples) < 2 {
		log.Println("Fewer than two samples, skipping area estimates.")
	} else {
		area, err := nt.Integral(con.PrintIntegral)
		if err != nil { log.Fatal(err.Error()) }
		quad, err := nt.Quadrature(con.PrintQuadrature)
		if err != nil { log.Fatal(err.Error()) }
		log.Printf("Integral: %.8g, quadrature: %.8g, difference: %.3g",
			area, quad, quad-area)
	}

	if !con.ValidOutput() && !con.ValidPlotFile() { return }

	grid, err := curve(con, nt.Snapshot())
	if err != nil { log.Fatal(err.Error()) }

	if con.ValidOutput() {
		if err := io.WriteGridFile(con.Output, grid); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %d points to %s.", len(grid), con.Output)
	}

	if con.ValidPlotFile() {
		plotCurve(con.PlotFile, samples, grid)
		log.Printf("Plotted curve to %s.", con.PlotFile)
	}
}

// curve evaluates poly over the domain given in con.
func curve(
	con *io.NewtonConfig, poly *interpolate.Polynomial,
) ([]interpolate.Sample, error) {
	if con.UnitDomain() {
		return poly.Grid(con.Steps)
	}
	return poly.GridRange(con.DomainMin, con.DomainMax, con.Steps)
}

// setupIO sets up the log and profile files requested by con.
func setupIO(con *io.SharedConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	// Set up log file.
	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	// Set up profile file.
	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { log.Fatal(err.Error()) }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { log.Fatal(err.Error()) }
	}

	return fg
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but newton "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
