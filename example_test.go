package timerun_test

import (
	"fmt"

	"timerun"
)

// tickingClock returns a simulated clock that advances by the given step on every reading.
func tickingClock(step int64) func() int64 {
	var now int64

	return func() int64 {
		now += step
		return now
	}
}

func ExampleDuration_String() {
	fmt.Println(timerun.NewDuration(1))
	fmt.Println(timerun.NewDuration(1500000000))
	fmt.Println(timerun.NewDuration(0))
	// Output:
	// 0:00:00.000000001
	// 0:00:01.500000000
	// 0:00:00
}

func ExampleMeasurer() {
	m := timerun.NewMeasurer(timerun.MeasurerOpts{Clock: tickingClock(100)})
	m.Launch()

	elapsed, err := m.Elapse()
	if err != nil {
		panic(err)
	}

	fmt.Println(elapsed)
	// Output:
	// 0:00:00.000000100
}

func ExampleCatcher_Run() {
	c := timerun.NewCatcher(timerun.CatcherOpts{Clock: tickingClock(100)})

	c.Run(func() {
		// Timed work goes here.
	})

	last, err := c.Duration()
	if err != nil {
		panic(err)
	}

	fmt.Println(last)
	// Output:
	// 0:00:00.000000100
}

func ExampleCatcher_Wrap() {
	c := timerun.NewCatcher(timerun.CatcherOpts{Clock: tickingClock(50)})

	fn := c.Wrap(func() {
		// Timed work goes here.
	})

	fn()
	fn()

	for _, d := range c.Durations() {
		fmt.Println(d)
	}
	// Output:
	// 0:00:00.000000050
	// 0:00:00.000000050
}
