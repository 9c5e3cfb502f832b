// Command scdiff drives the scdiff plagiarism-detection engine over a
// directory of fixture statecharts.
package main

import "github.com/comalice/scdiff/cmd/scdiff/cmd"

func main() {
	cmd.Execute()
}
