// Command elbow routes orthogonal connectors and works with scene files.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
	"github.com/ha1tch/elbow-toolkit/pkg/elbowfile"
)

const usage = `elbow - orthogonal connector toolkit

Usage:
  elbow <command> [options]

Commands:
  route      Route a single connector
  check      Route every scene in a file and compare with expectations
  svg        Render a scene to SVG
  png        Render a scene to PNG
  cases      List the routing templates

Endpoints are written x,y or x,y,facing where facing is one of
x+, x-, y+, y- or none.

Examples:
  elbow route 0,0,x+ 100,50,y+ -o 20
  elbow route 100,100,y- 300,200,y- --json
  elbow check scenes.yaml
  elbow svg scenes.yaml -n elbow09 -o elbow09.svg
  elbow cases

Defaults for overshoot and image size are read from elbow.yaml in the
current directory when present.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "route":
		cmdRoute(args)
	case "check":
		cmdCheck(args)
	case "svg":
		cmdRender(args, "svg")
	case "png":
		cmdRender(args, "png")
	case "cases":
		cmdCases()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func loadConfig() *elbowfile.Resolved {
	cfg, err := elbowfile.Resolve(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func cmdRoute(args []string) {
	cfg := loadConfig()
	ra, err := parseRouteArgs(args, cfg.Overshoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: elbow route <x1,y1[,facing]> <x2,y2[,facing]> [-o overshoot] [--json] [-v]")
		os.Exit(1)
	}

	start, err := parseEndpoint(ra.positional[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid start: %v\n", err)
		os.Exit(1)
	}
	end, err := parseEndpoint(ra.positional[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid end: %v\n", err)
		os.Exit(1)
	}

	path, c, err := elbow.CalculateCase(start, end, ra.overshoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error routing: %v\n", err)
		os.Exit(1)
	}

	if ra.verbose {
		fmt.Fprintf(os.Stderr, "case %s: %d bends, length %g\n", c, path.Bends(), path.Length())
	}

	if ra.asJSON {
		data, err := json.MarshalIndent(routeResult(path, c), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	for _, p := range path {
		fmt.Printf("%g,%g\n", p.X, p.Y)
	}
}

type routeArgs struct {
	overshoot  float64
	asJSON     bool
	verbose    bool
	positional []string
}

// parseRouteArgs parses the route options. overshoot is the default used
// when -o is not given.
func parseRouteArgs(args []string, overshoot float64) (routeArgs, error) {
	ra := routeArgs{overshoot: overshoot}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--overshoot":
			v, err := flagValue(args, i)
			if err != nil {
				return ra, err
			}
			ra.overshoot, err = strconv.ParseFloat(v, 64)
			if err != nil {
				return ra, fmt.Errorf("invalid overshoot %q: %w", v, err)
			}
			i++
		case "--json":
			ra.asJSON = true
		case "-v", "--verbose":
			ra.verbose = true
		default:
			ra.positional = append(ra.positional, args[i])
		}
	}

	if len(ra.positional) != 2 {
		return ra, fmt.Errorf("expected 2 endpoints, got %d", len(ra.positional))
	}
	return ra, nil
}

// flagValue returns the argument following the flag at args[i].
func flagValue(args []string, i int) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("%s needs a value", args[i])
	}
	return args[i+1], nil
}

type routeOutput struct {
	Case   elbow.Case   `json:"case"`
	Points [][2]float64 `json:"points"`
}

func routeResult(path elbow.Path, c elbow.Case) routeOutput {
	out := routeOutput{Case: c, Points: make([][2]float64, len(path))}
	for i, p := range path {
		out.Points[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func cmdCheck(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: elbow check <scenes.{json,yaml}>")
		os.Exit(1)
	}

	input := args[0]
	f, err := elbowfile.LoadScenes(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	failed := 0
	for i, s := range f.Scenes {
		name := sceneLabel(s, i)
		_, c, err := s.Check()
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s (case %s)\n", name, c)
	}

	fmt.Printf("%s: %d scenes, %d failed\n", input, len(f.Scenes), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func sceneLabel(s elbowfile.Scene, i int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("#%d", i)
}

func cmdRender(args []string, format string) {
	ra, err := parseRenderArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Usage: elbow %s <scenes-file> [-n name] [-o output] [-t title]\n", format)
		os.Exit(1)
	}

	f, err := elbowfile.LoadScenes(ra.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", ra.input, err)
		os.Exit(1)
	}
	scene, err := f.Find(ra.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	path, c, err := scene.Route()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error routing %s: %v\n", scene.Name, err)
		os.Exit(1)
	}

	if ra.title == "" {
		ra.title = fmt.Sprintf("case %s", c)
		if scene.Name != "" {
			ra.title = scene.Name + ": " + ra.title
		}
	}
	if ra.output == "" {
		base := strings.TrimSuffix(ra.input, filepath.Ext(ra.input))
		if scene.Name != "" {
			base += "-" + scene.Name
		}
		ra.output = base + "." + format
	}

	cfg := loadConfig()
	switch format {
	case "svg":
		opts := cfg.SVGOptions()
		opts.Title = ra.title
		err = os.WriteFile(ra.output, []byte(elbowfile.RenderSVG(path, opts)), 0644)
	case "png":
		opts := cfg.PNGOptions()
		opts.Title = ra.title
		err = writePNG(ra.output, path, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", ra.output, err)
		os.Exit(1)
	}

	fmt.Printf("Written: %s\n", ra.output)
}

type renderArgs struct {
	input, name, output, title string
}

func parseRenderArgs(args []string) (renderArgs, error) {
	var ra renderArgs
	if len(args) < 1 {
		return ra, fmt.Errorf("missing scenes file")
	}
	ra.input = args[0]

	for i := 1; i < len(args); i++ {
		var dst *string
		switch args[i] {
		case "-n", "--name":
			dst = &ra.name
		case "-o", "--output":
			dst = &ra.output
		case "-t", "--title":
			dst = &ra.title
		default:
			return ra, fmt.Errorf("unknown option %q", args[i])
		}
		v, err := flagValue(args, i)
		if err != nil {
			return ra, err
		}
		*dst = v
		i++
	}
	return ra, nil
}

func writePNG(output string, path elbow.Path, opts elbowfile.PNGOptions) error {
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := elbowfile.RenderPNG(path, out, opts); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func cmdCases() {
	printCases(os.Stdout)
}

func printCases(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tSTART\tEND\tCONDITION\tROUTE")
	for _, ci := range elbow.Cases() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ci.Case, ci.Start, ci.End, ci.Condition, ci.Description)
	}
	tw.Flush()
}

// parseEndpoint parses "x,y" or "x,y,facing".
func parseEndpoint(s string) (elbow.Endpoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return elbow.Endpoint{}, fmt.Errorf("expected x,y[,facing], got %q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return elbow.Endpoint{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return elbow.Endpoint{}, fmt.Errorf("bad y in %q: %w", s, err)
	}

	var facing elbow.Direction
	if len(parts) == 3 {
		facing, err = elbow.ParseDirection(strings.TrimSpace(parts[2]))
		if err != nil {
			return elbow.Endpoint{}, err
		}
	}
	return elbow.Endpoint{Point: elbow.Point{X: x, Y: y}, Facing: facing}, nil
}
