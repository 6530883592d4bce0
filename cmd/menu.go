package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/addrqa/report-compare/internal/report"
)

var menuChoices = map[string]report.Metric{
	"1": report.ASF,
	"2": report.APA,
	"3": report.PSF,
	"4": report.SSF,
	"5": report.All,
}

func printMenu(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available metrics to compare:")
	fmt.Fprintln(w, "1. ASF (Address Successfully Found)")
	fmt.Fprintln(w, "2. APA (Address Positional Accuracy)")
	fmt.Fprintln(w, "3. PSF (PostCode Successfully Found)")
	fmt.Fprintln(w, "4. SSF (Street Successfully Found)")
	fmt.Fprintln(w, "5. All metrics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Enter the number of your choice (1-5):")
}

// promptMetric shows the menu and reads lines from r until one is a valid
// choice, re-prompting on anything else.
func promptMetric(r io.Reader, w io.Writer) (report.Metric, error) {
	printMenu(w)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		choice := strings.TrimSpace(scanner.Text())
		if m, ok := menuChoices[choice]; ok {
			return m, nil
		}
		fmt.Fprintln(w, "Invalid choice. Please enter a number between 1 and 5.")
	}
	if err := scanner.Err(); err != nil {
		return "", eris.Wrap(err, "menu: read choice")
	}
	return "", eris.New("menu: input closed before a valid choice was made")
}
