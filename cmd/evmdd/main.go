// Command evmdd compiles an arithmetic term over finite-domain integer
// variables into an EVMDD and reports on it: its size, its value under an
// optional variable assignment, and (on request) a Graphviz rendering.
package main

import "github.com/robertmattmueller/go-evmdd/cmd/evmdd/cmd"

func main() {
	cmd.Execute()
}
