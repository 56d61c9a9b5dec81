package main

import "github.com/dvsdigi/dvsapp/internal/cmd"

func main() {
	cmd.Execute()
}
