package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/karimzakaria/timetabler/internal/csvio"
	"github.com/karimzakaria/timetabler/internal/display"
	"github.com/karimzakaria/timetabler/internal/solver"
	"github.com/karimzakaria/timetabler/pkg/model"
)

var validModes = []string{string(model.FindFirst), string(model.Optimize)}

func main() {
	// Define arguments
	jsonPathPtr := flag.String("input", "", "Path to a JSON input file containing all entity tables")
	csvDirPtr := flag.String("csv", "", "Path to a directory of CSV entity tables (courses.csv, instructors.csv, rooms.csv, timeslots.csv, sections.csv, curriculum.csv)")
	modePtr := flag.String("mode", string(model.FindFirst), `Solver mode. Allowed values are:
- "find_first" (stop at the first feasible timetable, fastest),
- "optimize" (search for the best-scoring timetable within the timeout), where "find_first" is the default`)
	timeoutPtr := flag.Uint("timeout", 300, "Optimization timeout in seconds (optimize mode only)")
	outJsonPtr := flag.String("out", "", "Path to write the solution as JSON; if empty, nothing is written")
	outCsvPtr := flag.String("out-csv", "", "Path to write the flat schedule as CSV; if empty, nothing is written")
	verbosePtr := flag.Bool("verbose", false, "Report remaining unscheduled section-classes while searching")
	flag.Parse()
	mode := model.Mode(strings.ToLower(*modePtr))

	// Validate arguments
	if !slices.Contains(validModes, string(mode)) {
		log.Fatalf("%v is not a valid mode", *modePtr)
	} else if (*jsonPathPtr == "") == (*csvDirPtr == "") {
		log.Fatal("exactly one of -input and -csv must be specified")
	}

	// Extract input
	var data model.TimetableData
	var err error
	if *jsonPathPtr != "" {
		data, err = model.InputFromJson(*jsonPathPtr)
	} else {
		data, err = csvio.LoadTimetableData(*csvDirPtr)
	}
	if err != nil {
		log.Fatalf("cannot load input data: %v", err)
	}

	// Initialize engine
	engine, err := solver.New(data)
	if err != nil {
		log.Fatalf("cannot formulate the scheduling problem: %v", err)
	}
	if *verbosePtr {
		engine.Progress = func(remaining int) {
			fmt.Printf("%v unscheduled section-classes remaining\n", remaining)
		}
	}

	// Build timetable
	solution, found, err := engine.Solve(mode, time.Duration(*timeoutPtr)*time.Second)
	if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	} else if !found {
		fmt.Println("No timetable satisfies all hard constraints.")
		os.Exit(20)
	}

	fmt.Printf("Timetable found with score %.2f\n\n", solution.Score)
	fmt.Print(display.Render(display.BuildGrids(solution)))

	if *outJsonPtr != "" {
		if err := csvio.ExportSolutionJson(solution, *outJsonPtr); err != nil {
			log.Fatalf("an error occurred while writing the solution file: %v", err)
		}
	}
	if *outCsvPtr != "" {
		if err := csvio.ExportSchedule(solution, *outCsvPtr); err != nil {
			log.Fatalf("an error occurred while writing the schedule file: %v", err)
		}
	}
}
