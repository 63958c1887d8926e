package main

import (
	"log"
	"os"

	"github.com/cruxvision/holdscan/internal/cli"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	cli.Execute()
}
