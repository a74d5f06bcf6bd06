package main

import (
	"github.com/Eringobraugh/inf80057-assistant-backend/core/tutor"
	"github.com/Eringobraugh/inf80057-assistant-backend/storage/datafile"
)

func (cli *commandLine) ask(question, docsPath string) error {
	docs, _, err := datafile.LoadCorpus(docsPath)
	if err != nil {
		return err
	}
	return cli.printJSON(tutor.Resolve(question, docs))
}

func (cli *commandLine) checklist(week, datesPath string) error {
	weeks, _, err := datafile.LoadSchedule(datesPath)
	if err != nil {
		return err
	}
	return cli.printJSON(tutor.Lookup(tutor.ParseWeekID(week), weeks))
}
