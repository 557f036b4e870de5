package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ctok/ctok/internal/lexer"
	"github.com/ctok/ctok/internal/loader"
	"github.com/ctok/ctok/internal/report"
)

func main() {
	var help bool

	flag.BoolVar(&help, "help", false, "show help message")

	flag.Parse()

	if help {
		fmt.Println("Usage: ctok [options] [source-file]")
		fmt.Println("Reads from stdin when no file is given, or when the file is '-'.")
		fmt.Println("Options:")
		flag.PrintDefaults()

		return
	}

	srcFile := loader.Stdin
	if flag.NArg() > 0 {
		srcFile = flag.Arg(0)
	}

	source, err := loader.Load(srcFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open '%s' for reading.\n", srcFile)
		os.Exit(1)
	}

	if err := report.Write(os.Stdout, lexer.Tokenize(source)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
