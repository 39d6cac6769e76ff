package dial_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aretw0/dial"
	"github.com/aretw0/dial/pkg/domain"
	"github.com/aretw0/dial/pkg/runner"
)

func ExampleEngine_Simulate() {
	eng, err := dial.New(
		dial.WithPerimeter(100),
		dial.WithStart(50),
		dial.WithHandler(runner.NewTextHandler(os.Stdout, runner.WithQuiet(true))),
	)
	if err != nil {
		log.Fatal(err)
	}

	input := strings.NewReader("L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n")
	if _, err := eng.Simulate(context.Background(), input); err != nil {
		log.Fatal(err)
	}
	// Output: commands=10 landed_on_zero=3 zero_crossings=6 final_position=32
}

func ExampleEngine_NewDial() {
	eng, _ := dial.New()
	d, _ := eng.NewDial()

	cmd, err := domain.ParseCommand("R150")
	if err != nil {
		log.Fatal(err)
	}

	step := d.Apply(cmd)
	fmt.Println(step.Position, step.Crossings)
	// Output: 0 2
}
