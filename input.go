package schemagen

import (
	"bufio"
	"io"
	"strings"
)

// ReadURLs reads one URL per line from r. Surrounding whitespace is trimmed
// and blank lines are skipped.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
