package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
)

var errHelp = errors.New("help provided")

// commandLine runs the assistant offline against the data files, without the HTTP layer.
type commandLine struct {
	out       io.Writer
	docsPath  string // defaults for -docs
	datesPath string // defaults for -dates
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  check [-docs PATH] [-dates PATH]          - validate the data files and print their digests")
	fmt.Fprintln(cli.out, "  ask -q QUESTION [-docs PATH]              - answer a question from the documents")
	fmt.Fprintln(cli.out, "  checklist -week WEEK [-dates PATH]        - print the checklist of a week")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	checkCmd := cli.newFlagSet("check")
	checkDocs := checkCmd.String("docs", cli.docsPath, "Path of the documents file (JSON or YAML).")
	checkDates := checkCmd.String("dates", cli.datesPath, "Path of the schedule file (JSON or YAML).")

	askCmd := cli.newFlagSet("ask")
	askQuestion := askCmd.String("q", "", "The question to answer.")
	askDocs := askCmd.String("docs", cli.docsPath, "Path of the documents file (JSON or YAML).")

	checklistCmd := cli.newFlagSet("checklist")
	checklistWeek := checklistCmd.String("week", "", "The week, eg. 4. Numbers are numeric weeks, anything else a string week.")
	checklistDates := checklistCmd.String("dates", cli.datesPath, "Path of the schedule file (JSON or YAML).")

	switch args[1] {
	case "check":
		if err := parse(checkCmd, args[2:]); err != nil {
			return err
		}
		return cli.check(*checkDocs, *checkDates)
	case "ask":
		if err := parse(askCmd, args[2:]); err != nil {
			return err
		}
		if *askQuestion == "" {
			askCmd.Usage()
			return errHelp
		}
		return cli.ask(*askQuestion, *askDocs)
	case "checklist":
		if err := parse(checklistCmd, args[2:]); err != nil {
			return err
		}
		if *checklistWeek == "" {
			checklistCmd.Usage()
			return errHelp
		}
		return cli.checklist(*checklistWeek, *checklistDates)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) printJSON(v interface{}) error {
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
