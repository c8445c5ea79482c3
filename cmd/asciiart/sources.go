package main

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

/*
gatherSources lists the images to convert. Directories among args are walked recursively and contribute every regular
file under them, in lexical order. With no args, sources are read one per line from stdin, unless stdin is a terminal,
in which case there is nothing to convert.
*/
func gatherSources(args []string, stdin io.Reader, stdinIsTerminal bool) ([]string, error) {
	if len(args) == 0 {
		if stdinIsTerminal {
			return nil, nil
		}
		return scanSources(stdin)
	}

	var sources []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// Not a local directory, let the converter decide between file and URL
			sources = append(sources, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.Type().IsRegular() {
				sources = append(sources, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

func scanSources(r io.Reader) ([]string, error) {
	var sources []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sources = append(sources, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sources, nil
}
