// +build !windows

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Error("cubed renders through Direct3D 11 and only runs on windows")
	os.Exit(1)
}
