package main

import (
	"log"
	"os"
	"runtime/pprof"
)

var profileFile *os.File

func startProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	profileFile = f
	if err := pprof.StartCPUProfile(f); err != nil {
		log.Fatal(err)
	}
}

func stopProfile() {
	pprof.StopCPUProfile()
	profileFile.Close()
}
