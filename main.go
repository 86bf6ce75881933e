package main

import "github.com/arogyahq/arogya_backend/cmd"

func main() {
	cmd.Execute()
}
