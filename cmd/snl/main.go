package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdout))
}
