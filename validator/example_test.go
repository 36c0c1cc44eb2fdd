package validator_test

import (
	"fmt"

	"github.com/jmharte/winpathtools/validator"
)

// Example demonstrates validating path text and reading the rejection
// reasons.
func Example() {
	result := validator.Validate(`c:\logs\PRN.txt`)
	fmt.Println(result.Valid)
	fmt.Println(result.WindowsReason)
	// Output:
	// false
	// validation error (segment) for \logs\PRN.txt at segment "PRN.txt": reserved device name
}

// Example_predicates demonstrates the boolean check forms.
func Example_predicates() {
	fmt.Println(validator.IsValidFileName("report.txt"))
	fmt.Println(validator.IsValidFileName("AUX"))
	fmt.Println(validator.IsValidWindowsPath(`c:\local\path`))
	fmt.Println(validator.IsValidUNCPath(`\\fs01\c$\logs`))
	// Output:
	// true
	// false
	// true
	// true
}
