package main

import (
	"log"
	"os"

	"github.com/Eringobraugh/inf80057-assistant-backend/core"
)

func main() {
	logger := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.LoadConfig(".")
	if err != nil {
		logger.Fatal(err)
	}

	cli := commandLine{
		out:       os.Stdout,
		docsPath:  conf.Data.DocsPath,
		datesPath: conf.Data.DatesPath,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
