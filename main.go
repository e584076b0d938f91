/*
This is an example of application that will use the
math packages to test things out
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/geom3/engine/core"
	"github.com/spaghettifunk/geom3/testbed"
)

func main() {
	scenePath := flag.String("scene", "testbed/scene.toml", "scene file to evaluate")
	watch := flag.Bool("watch", false, "re-run the scene every time the file changes")
	flag.Parse()

	if _, err := testbed.Execute(*scenePath); err != nil {
		core.LogFatal("failed to run scene %s: %s", *scenePath, err)
	}

	if !*watch {
		return
	}

	watcher, err := testbed.NewWatcher(*scenePath, func(_ *testbed.Report, err error) {
		if err != nil {
			core.LogError("failed to run scene %s: %s", *scenePath, err)
		}
	})
	if err != nil {
		core.LogFatal("failed to watch scene %s: %s", *scenePath, err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		cancel()
	}()

	if err := watcher.Run(ctx); err != nil {
		core.LogFatal("watcher stopped: %s", err)
	}
}
