package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

var (
	flagQuiet     = false
	flagOverwrite = false
)

func init() {
	log.SetFlags(0)
}

type command struct {
	name            string
	positionalUsage string
	shortHelp       string
	help            string
	flags           *flag.FlagSet
	addFlags        func(*command)
	run             func(*command)
}

func (c *command) showUsage() {
	log.Printf("Usage: rstools %s [flags] %s\n", c.name, c.positionalUsage)
	c.showFlags()
	os.Exit(1)
}

func (c *command) showHelp() {
	log.Printf("Usage: rstools %s [flags] %s\n\n", c.name, c.positionalUsage)
	log.Println(strings.TrimSpace(c.help))
	c.showFlags()
	log.Println("")
	os.Exit(1)
}

func (c *command) showFlags() {
	c.flags.VisitAll(func(fl *flag.Flag) {
		var def string
		if len(fl.DefValue) > 0 {
			def = fmt.Sprintf(" (default: %s)", fl.DefValue)
		}
		usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
		log.Printf("-%s%s\n", fl.Name, def)
		log.Printf("    %s\n", usage)
	})
}

func (c *command) setCommonFlags() {
	c.flags.BoolVar(&flagQuiet, "quiet", flagQuiet,
		"When set, progress information and other status messages will\n"+
			"not be printed to stderr.")
	if c.addFlags != nil {
		c.addFlags(c)
	}
}

func (c *command) setOverwriteFlag() {
	c.flags.BoolVar(&flagOverwrite, "overwrite", flagOverwrite,
		"When set, any existing file will be overwritten.")
}

func (c *command) assertNArg(n int) {
	if c.flags.NArg() != n {
		c.showUsage()
	}
}

func (c *command) assertLeastNArg(n int) {
	if c.flags.NArg() < n {
		c.showUsage()
	}
}

func verbosef(format string, v ...interface{}) {
	if !flagQuiet {
		log.Printf(format, v...)
	}
}
