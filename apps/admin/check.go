package main

import (
	"fmt"

	"github.com/Eringobraugh/inf80057-assistant-backend/storage/datafile"
)

// check loads both data files strictly: unlike the API, any problem is an error.
func (cli *commandLine) check(docsPath, datesPath string) error {
	docs, docsFile, err := datafile.LoadCorpus(docsPath)
	if err != nil {
		return err
	}
	var sections int
	for _, doc := range docs {
		sections += len(doc.Sections)
	}
	fmt.Fprintf(cli.out, "%s: %d documents, %d sections, sha256 %s\n", docsFile.Path, len(docs), sections, docsFile.Digest)

	weeks, datesFile, err := datafile.LoadSchedule(datesPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s: %d weeks, sha256 %s\n", datesFile.Path, len(weeks), datesFile.Digest)
	return nil
}
