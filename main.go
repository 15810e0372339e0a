package main

import "github.com/studyflowhq/studyflow/cmd"

func main() {
	cmd.Execute()
}
