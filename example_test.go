package sigflow_test

import (
	"fmt"

	"github.com/db47h/sigflow"
	"github.com/db47h/sigflow/blocks"
)

// Build a power meter: multiply a voltage and a current reading into a
// wattage, verify the wiring, then run a few cycles the way a scheduler
// would.
func Example() {
	voltage := blocks.NewSource("voltage", sigflow.Volt, func() (float64, sigflow.Timestamp) {
		return 2.5, 3
	})
	current := blocks.NewSource("current", sigflow.Ampere, func() (float64, sigflow.Timestamp) {
		return 2.3, 4
	})
	power := blocks.NewMulUnits[float64]("power", sigflow.Volt, sigflow.Ampere, sigflow.Watt)

	if err := sigflow.Connect(power.In1(), voltage.Out()); err != nil {
		fmt.Println(err)
		return
	}
	if err := sigflow.Connect(power.In2(), current.Out()); err != nil {
		fmt.Println(err)
		return
	}
	graph := []sigflow.Block{voltage, current, power}
	if err := sigflow.Verify(graph...); err != nil {
		fmt.Println(err)
		return
	}

	for cycle := 0; cycle < 2; cycle++ {
		for _, b := range graph {
			if err := sigflow.RunCycle(b); err != nil {
				fmt.Println(err)
				return
			}
		}
	}
	out := power.Out().Signal()
	fmt.Printf("%.3g %s at t=%d\n", out.Value(), power.Out().Unit(), out.Time())

	// Output:
	// 5.75 m^2·kg·s^-3 at t=3
}
