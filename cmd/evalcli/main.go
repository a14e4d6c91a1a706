// Plan Evaluator CLI - evaluate a plan against a ground truth from the
// command line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/arcwell-robotics/planeval/pkg/evaluator"
)

const usage = `planeval-cli - evaluate a multi-robot plan against a ground truth

USAGE:
    planeval-cli evaluate -ground-truth <file> -plan <file> [-seed <n>]
    planeval-cli version
    planeval-cli help

EVALUATE OPTIONS:
    -ground-truth <file>   Path to the ground truth JSON document (required)
    -plan <file>            Path to the plan JSON document (required)
    -seed <n>               Random seed for initial-position alternatives (default: 1)
    -pretty                 Pretty-print the verdict JSON (default: true)

EXAMPLES:
    planeval-cli evaluate -ground-truth scene.json -plan plan.json
    planeval-cli evaluate -ground-truth scene.json -plan plan.json -seed 42
`

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	godotenv.Load()

	switch os.Args[1] {
	case "evaluate":
		handleEvaluate(os.Args[2:])
	case "version":
		fmt.Printf("planeval-cli v%s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func handleEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	groundTruthPath := fs.String("ground-truth", "", "Path to the ground truth JSON document (required)")
	planPath := fs.String("plan", "", "Path to the plan JSON document (required)")
	seed := fs.Int64("seed", 1, "Random seed for initial-position alternatives")
	pretty := fs.Bool("pretty", true, "Pretty-print the verdict JSON")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *groundTruthPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -ground-truth is required")
		os.Exit(1)
	}
	if *planPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -plan is required")
		os.Exit(1)
	}

	groundTruthJSON, err := os.ReadFile(*groundTruthPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read ground truth file: %v\n", err)
		os.Exit(1)
	}

	planJSON, err := os.ReadFile(*planPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read plan file: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	start := time.Now()
	verdict, err := evaluator.RunFromJSON(groundTruthJSON, planJSON, *seed, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: evaluation failed: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(verdict, "", "  ")
	} else {
		out, err = json.Marshal(verdict)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode verdict: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))

	if !verdict.Success {
		fmt.Fprintf(os.Stderr, "evaluation failed after %s: %s\n", time.Since(start), verdict.ErrorKind)
		os.Exit(1)
	}
}
