package main

import "github.com/victordeveloper/webgrade/cmd"

// execCmd is swappable in tests.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
