package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ohad12345678/payslip/internal/config"
	"github.com/ohad12345678/payslip/internal/extract"
)

// StdinName is the path argument that reads standard input.
const StdinName = "-"

// textExtensions are the file types picked up when a directory is given.
var textExtensions = map[string]bool{".txt": true, ".text": true}

// ReadInputs loads decoded statement text from paths. Directories contribute
// their text files in name order; "-" reads stdin once.
func ReadInputs(paths []string, stdin io.Reader) ([]extract.Input, error) {
	var inputs []extract.Input
	stdinUsed := false

	for _, p := range paths {
		if p == StdinName {
			if stdinUsed {
				return nil, fmt.Errorf("stdin given more than once")
			}
			stdinUsed = true
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			inputs = append(inputs, extract.Input{Name: "stdin", Text: string(data)})
			continue
		}

		path := config.ExpandPath(p)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", p, err)
		}
		if !info.IsDir() {
			in, err := readFile(path)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, in)
			continue
		}

		files, err := textFiles(path)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			in, err := readFile(f)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, in)
		}
	}
	return inputs, nil
}

func readFile(path string) (extract.Input, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied input file
	if err != nil {
		return extract.Input{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return extract.Input{Name: filepath.Base(path), Text: string(data)}, nil
}

func textFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !textExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
