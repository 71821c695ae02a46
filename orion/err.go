package orion

import (
	"errors"
	"fmt"
)

// ExitApp requests the loop to stop. It is returned when the window is
// closed and may be returned by an Application to end the loop.
var ExitApp = errors.New("exit app")

// Handle panics if err is not nil.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
