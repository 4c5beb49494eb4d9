package dirplot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	csvExt  = ".csv"
	xlsxExt = ".xlsx"
	pdfExt  = ".pdf"
)

// DiscoverInputs lists the input files in dir, "" meaning the working
// directory. Returned paths are joined with dir, in the order the filesystem
// reports them. CSV files come first, then workbooks when IncludeXLSX is set.
func (p *Plotter) DiscoverInputs(dir string) ([]string, error) {
	scan := dir
	if scan == "" {
		scan = "."
	}

	info, err := os.Stat(scan)
	if err != nil {
		return nil, NewProcessError(scan, ErrDiscovery, err)
	}
	if !info.IsDir() {
		return nil, NewProcessError(scan, ErrDiscovery, fmt.Errorf("not a directory"))
	}

	entries, err := os.ReadDir(scan)
	if err != nil {
		return nil, NewProcessError(scan, ErrDiscovery, err)
	}

	var csvs, workbooks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, csvExt):
			csvs = append(csvs, filepath.Join(dir, name))
		case p.opts.IncludeXLSX && strings.HasSuffix(name, xlsxExt):
			workbooks = append(workbooks, filepath.Join(dir, name))
		}
	}

	return append(csvs, workbooks...), nil
}

// accepts reports whether path names a file DiscoverInputs would return.
func (p *Plotter) accepts(path string) bool {
	if strings.HasSuffix(path, csvExt) {
		return true
	}
	return p.opts.IncludeXLSX && strings.HasSuffix(path, xlsxExt)
}

// OutputName returns the PDF path for an input path: the trailing ".csv"
// (or ".xlsx") is replaced by ".pdf". ok is false for other suffixes.
func OutputName(path string) (name string, ok bool) {
	for _, ext := range []string{csvExt, xlsxExt} {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext) + pdfExt, true
		}
	}
	return "", false
}
