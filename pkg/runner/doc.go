/*
Package runner implements the driver loop that feeds rotation commands into a dial.

It acts as the bridge between the pure dial arithmetic (package domain) and the
outside world. The runner reads one token per line, sanitizes and parses it,
applies it to the dial strictly in input order, and aggregates the results into
a Report. Presentation is delegated to pluggable output handlers.

# Key Components

  - Runner: The orchestrator; reads, parses, applies and aggregates.
  - OutputHandler: Decouples how steps and the summary are presented.
  - TextHandler: Human-readable line output.
  - JSONHandler: NDJSON output for scripts.

# Usage

	d, _ := domain.NewDial(100, 50)
	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
	)

	report, err := r.Run(ctx, d, file)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report.ZeroLandings, report.Crossings)
*/
package runner
