package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/e11jah/rbt/ingredient"
	"github.com/e11jah/rbt/internal/logging"
)

const menuText = `Select an option:
1. Upload data file
2. List of ingredient replacements
3. List the number of ingredients and categories
4. Exit`

// runMenu drives the text menu until the user exits or input ends.
func runMenu(in io.Reader, out io.Writer, backend *ingredient.Backend) error {
	scanner := bufio.NewScanner(in)
	readLine := func(prompt string) (string, bool) {
		fmt.Fprintln(out, prompt)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Fprintln(out, "Welcome to the ingredient substitute finder.")
	for {
		choice, ok := readLine(menuText)
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			path, ok := readLine("Enter the file path for the data set:")
			if !ok {
				return scanner.Err()
			}
			if _, err := backend.LoadData(path); err != nil {
				logging.Error().Err(err).Str("path", path).Msg("loading data file")
				fmt.Fprintf(out, "Could not read %s\n", path)
				continue
			}
			fmt.Fprintln(out, "File read successfully")
		case "2":
			name, ok := readLine("Enter the name of the ingredient:")
			if !ok {
				return scanner.Err()
			}
			printSubstitutes(out, name, backend.NameSubstitutes(name))
		case "3":
			printCounts(out, backend)
		case "4":
			fmt.Fprintln(out, "Exited App")
			return nil
		default:
			fmt.Fprintf(out, "Unknown option %q\n", choice)
		}
	}
}
