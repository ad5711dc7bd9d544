// Released under an MIT license. See LICENSE.

// Package cache remembers directory listings. All access is serialized
// through a single goroutine.
package cache

import (
	"os"
	"path/filepath"
	"sort"
)

// Files returns the sorted names of the regular files in dirname. The
// directory is read once and the listing kept until Invalidate is called.
func Files(dirname string) ([]string, error) {
	dirname = filepath.Clean(dirname)

	type result struct {
		err   error
		names []string
	}

	resultq := make(chan result)

	requestq <- func() {
		if names, ok := files[dirname]; ok {
			resultq <- result{names: names}
			close(resultq)

			return
		}

		es, err := os.ReadDir(dirname)
		if err != nil {
			resultq <- result{err: err}
			close(resultq)

			return
		}

		names := make([]string, 0, len(es))

		for _, e := range es {
			if e.Type().IsRegular() {
				names = append(names, e.Name())
			}
		}

		sort.Strings(names)

		files[dirname] = names

		resultq <- result{names: names}
		close(resultq)
	}

	r := <-resultq

	return append([]string(nil), r.names...), r.err
}

// Invalidate drops the listing for dirname.
func Invalidate(dirname string) {
	dirname = filepath.Clean(dirname)

	done := make(chan struct{})

	requestq <- func() {
		delete(files, dirname)
		close(done)
	}

	<-done
}

//nolint:gochecknoglobals
var (
	files    = map[string][]string{}
	requestq chan func()
)

func init() { //nolint:gochecknoinits
	requestq = make(chan func(), 1)

	go service()
}

func service() {
	for {
		(<-requestq)()
	}
}
