// Command kdd19 runs the hands-on deep learning lessons.
package main

import "github.com/rajagopal17/KDD19-tutorial/internal/cli"

func main() {
	cli.Execute()
}
