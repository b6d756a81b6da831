// Command pointmatch reads two planar point sets and prints a
// minimum-distance pairing between them.
//
// Usage:
//
//	pointmatch [flags] [input-file]
//
// The input is read from input-file, or from stdin when it is absent or "-".
// Exit status: 0 on success, 2 on bad input or configuration, 3 when the
// solver detects an internal invariant violation, 1 otherwise.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
