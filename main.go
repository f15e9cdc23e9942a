package main

import (
	"github.com/similar-manga/mdserial/cmd"
	_ "github.com/similar-manga/mdserial/cmd/entities"
)

func main() {
	cmd.Execute()
}
