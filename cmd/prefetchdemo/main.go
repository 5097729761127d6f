// Command prefetchdemo drives a Manager by hand against a real directory,
// for manual inspection. It is not the filesystem adapter the core is
// designed to sit behind (that piece is out of scope for this module);
// it plays the same debugging role the teacher's main.go/dumpFS did.
package main

import (
	"fmt"
	"os"
	"time"

	prefetchcache "github.com/elliotnunn/prefetchcache"
	"github.com/elliotnunn/prefetchcache/internal/walkdemo"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: prefetchdemo <directory> [path...]")
		os.Exit(1)
	}
	root := os.Args[1]
	paths := os.Args[2:]
	if len(paths) == 0 {
		var err error
		paths, err = walkdemo.SampleFiles(root, 8)
		if err != nil {
			fmt.Fprintln(os.Stderr, "walk failed:", err)
			os.Exit(1)
		}
	}

	m := prefetchcache.New(prefetchcache.Config{})
	defer m.Shutdown()
	m.SetRoot(root)

	for _, p := range paths {
		m.Request(p)
	}

	time.Sleep(200 * time.Millisecond) // let the worker catch up before reporting
	fmt.Print(m.Status())
}
