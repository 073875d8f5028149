// Package errors provides coded, structured errors for goey.
//
// Library packages return plain error values wrapping a *GoeyError so that
// callers can test them with errors.Is / errors.As; the CLI prints them with
// Format.
//
// # Error Categories
//
//   - runtime: failures isolated to one toast (content render, action handler)
//   - config: goey.json problems
//   - validation: bad caller input (unknown position or anchor)
//   - export: frame export failures
//   - cli: command-line usage errors
//
// # Usage
//
//	err := errors.New("G010").
//	    WithDetail("toaster.bounce must be within [0.05, 0.8]").
//	    WithSuggestion(`Set "bounce": 0.4 in goey.json`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR G010: Invalid configuration
//	//
//	//   toaster.bounce must be within [0.05, 0.8]
//	//
//	//   Hint: Set "bounce": 0.4 in goey.json
package errors
