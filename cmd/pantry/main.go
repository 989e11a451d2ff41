// Command pantry tracks item quantities in a local inventory file.
package main

import "github.com/mesh-intelligence/pantry/internal/cli"

func main() {
	cli.Execute()
}
