// This program runs the scalability models and prints the published figures
// from the command line.
package main

import "github.com/ardanlabs/scalability/app/tooling/scalectl/cmd"

func main() {
	cmd.Execute()
}
