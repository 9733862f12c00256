package control_test

import (
	"fmt"

	"github.com/charmingruby/lazyseq/control"
)

func ExampleFromError() {
	for _, err := range []error{nil, control.ErrContinue, control.ErrBreak} {
		out, _ := control.FromError("value", err)
		fmt.Println(out)
	}
	// Output:
	// Produced(value)
	// skip
	// stop
}
