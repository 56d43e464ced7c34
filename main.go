package main

import "github.com/YangQing-Lin/prelayn-cli/cmd"

func main() {
	cmd.Execute()
}
