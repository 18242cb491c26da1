package capture_test

import (
	"fmt"

	"github.com/grokkit/grokkit/capture"
)

// Example shows the compiler-side and matcher-side halves of the store.
func Example() {
	s := capture.NewStore()

	// Compiler side: one record per capture group.
	c := capture.NewCapture()
	c.ID, c.Number = 0, 1
	c.Name = "SYSLOGBASE:stamp"
	_, c.Subname = capture.SplitName(c.Name)
	c.Pattern = `%{MONTH} +%{MONTHDAY} %{TIME}`
	s.Add(c, false)

	// Matcher side: resolve group metadata after a match.
	if got, ok := s.BySubname("stamp"); ok {
		fmt.Println(got.Name)
	}
	// Output: SYSLOGBASE:stamp
}

// ExampleStore_Walk drains every record in ascending id order.
func ExampleStore_Walk() {
	s := capture.NewStore()
	for _, id := range []int{2, 0, 1} {
		c := capture.NewCapture()
		c.ID, c.Number = id, id
		c.Name = fmt.Sprintf("GROUP%d", id)
		s.Add(c, false)
	}

	w := s.Walk()
	for c, ok := w.Next(); ok; c, ok = w.Next() {
		fmt.Println(c.ID, c.Name)
	}
	// Output:
	// 0 GROUP0
	// 1 GROUP1
	// 2 GROUP2
}
