// Command typedrepo runs the demos of the typed repositories.
package main

import "github.com/go-arrower/typedrepo/typedrepo/cmd"

func main() {
	cmd.Execute()
}
