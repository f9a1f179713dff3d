// Command rstools post-processes the outputs of protein design
// simulations: renaming the decoys of silent files and computing
// sequence statistics and plots over design populations.
package main

import (
	"log"
	"os"
	"strings"
)

var commands = []*command{
	cmdRename,
	cmdView,
	cmdFasta,
	cmdFrequency,
	cmdLogo,
	cmdSimilarity,
	cmdNetwork,
}

func usage() {
	log.Println("Usage: rstools {command} [flags] [arguments]\n")
	log.Println("Use 'rstools help {command}' for more details on {command}.\n")
	log.Println("A list of all available commands:\n")
	for _, c := range commands {
		log.Printf("    rstools %s [flags] %s\n", c.name, c.positionalUsage)
		log.Printf("        %s\n", c.shortHelp)
	}
	log.Println("")
	os.Exit(1)
}

func main() {
	var cmd string
	var help bool
	if len(os.Args) < 2 {
		usage()
	} else if strings.TrimLeft(os.Args[1], "-") == "help" {
		if len(os.Args) < 3 {
			usage()
		} else {
			cmd = os.Args[2]
			help = true
		}
	} else {
		cmd = os.Args[1]
	}

	for _, c := range commands {
		if c.name == cmd {
			c.setCommonFlags()
			if help {
				c.showHelp()
			} else {
				c.flags.Usage = c.showUsage
				c.flags.Parse(os.Args[2:])
				c.run(c)
				return
			}
		}
	}
	log.Printf("Unknown command '%s'. Run 'rstools help' for a list of "+
		"available commands.", cmd)
	os.Exit(1)
}
