// Command validate_config checks one or more game config files and prints the
// effective values of each.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/invaders/pkg/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: validate_config [-print] file.yaml...\n")
		flag.PrintDefaults()
	}
	printEffective := flag.Bool("print", false, "print the effective config after defaults are applied")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s\n", path)
		if *printEffective {
			out, err := yaml.Marshal(cfg)
			if err != nil {
				fmt.Printf("FAIL %s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Println(string(out))
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
