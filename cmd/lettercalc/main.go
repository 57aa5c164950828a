package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lettercalc/lettercalc"
	"github.com/mattn/go-isatty"
)

func repl() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := lettercalc.Evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(n)
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 1 {
		if expr := strings.TrimSpace(flag.Arg(0)); expr != "" {
			n, err := lettercalc.Evaluate(expr)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(n)
			return
		}
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl()
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
		return
	}
	n, err := lettercalc.Evaluate(scanner.Text())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n)
}
