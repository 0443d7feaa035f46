package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"mython/internal"
)

const historyFile = ".mython_history"

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	internal.SetDebug(*debug)

	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: mython [/path/to/source.my]")
		os.Exit(2)
	}

	if len(args) == 1 {
		lexFile(args[0])
		return
	}
	repl()
}

// lexFile dumps the token stream of a source file, one token per line.
func lexFile(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logrus.Fatal(err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		logrus.Fatal(err)
	}
	defer file.Close()

	lexer, err := internal.NewLexer(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		os.Exit(1)
	}

	for _, tk := range lexer.Tokens() {
		fmt.Println(tk)
	}
}

// repl lexes each entered line and shows its tokens.
func repl() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println(color.Cyan("Mython token inspector. Ctrl+C clears the line, Ctrl+D exits."))
	for {
		input, err := line.Prompt(">>> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		lexer, err := internal.NewLexer(strings.NewReader(input))
		if err != nil {
			fmt.Println(color.Red(err.Error()))
			continue
		}
		parts := make([]string, 0, len(lexer.Tokens()))
		for _, tk := range lexer.Tokens() {
			parts = append(parts, tk.String())
		}
		fmt.Println(strings.Join(parts, " "))
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
