// Command wisp is the command-line interface to the language implemented
// by the wisp module: load a file, drop into an interactive REPL, or both,
// optionally serving a network REPL alongside.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/fsnotify/fsnotify"

	"github.com/wisp-lang/wisp/pkg/eval"
	"github.com/wisp-lang/wisp/pkg/reader"
	"github.com/wisp-lang/wisp/pkg/repl"
	"github.com/wisp-lang/wisp/pkg/value"
)

var cli struct {
	File string `arg:"" optional:"" type:"existingfile" help:"Source file to load before starting the REPL."`

	Debug          bool   `help:"Print the parsed structure of each top-level form loaded from File before evaluating it."`
	Watch          bool   `help:"Reload File into a fresh environment whenever it changes on disk. Requires File."`
	Serve          string `help:"Address to serve a network REPL on, e.g. :4242." placeholder:"ADDR"`
	SharedEnv      bool   `name:"shared-env" help:"When serving, give every connected session the same environment instead of one each."`
	NonInteractive bool   `help:"Do not start the REPL: exit after loading File, or keep serving when --serve is given. Requires File unless --serve is given."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("wisp"),
		kong.Description("A small, homoiconic Scheme."),
	)

	env := eval.MakeGlobalEnvironment()

	if cli.File != "" {
		loadFile(cli.File, env)
	}

	if cli.Watch {
		if cli.File == "" {
			log.Fatal("wisp: --watch requires a file argument")
		}
		go watchFile(cli.File)
	}

	if cli.Serve != "" {
		var shared *value.Environment
		if cli.SharedEnv {
			shared = env
		}
		if cli.NonInteractive {
			serveNetwork(cli.Serve, shared)
			return
		}
		go serveNetwork(cli.Serve, shared)
	}

	if cli.NonInteractive {
		if cli.File == "" {
			log.Fatal("wisp: --non-interactive requires a file argument")
		}
		return
	}

	repl.New(os.Stdin, os.Stdout, env).Start()
}

// loadFile reads and evaluates every top-level form in path against env,
// in source order, printing each parsed form first when --debug is set.
func loadFile(path string, env *value.Environment) {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("wisp: reading %s: %v", path, err)
	}

	forms, err := reader.ReadAll(path, strings.NewReader(string(content)))
	if err != nil {
		log.Fatalf("wisp: parsing %s: %v", path, err)
	}

	for _, form := range forms {
		if cli.Debug {
			fmt.Fprintln(os.Stderr, repr.String(form, repr.Indent("  ")))
		}
		if _, err := eval.Evaluate(form, env); err != nil {
			log.Fatalf("wisp: evaluating %s: %v", path, err)
		}
	}
}

// watchFile reloads path into a fresh global environment every time it
// changes on disk, printing a banner first. The fresh environment is not
// handed to the REPL or the network server: their environments keep the
// bindings they already had.
func watchFile(path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("wisp: watch disabled, could not start fsnotify: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		log.Printf("wisp: watch disabled, could not watch %s: %v", path, err)
		return
	}

	for event := range watcher.Events {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			continue
		}
		fmt.Fprintf(os.Stderr, "\nwisp: %s changed, reloading into a fresh environment\n", path)
		loadFile(path, eval.MakeGlobalEnvironment())
	}
}

// serveNetwork starts a network REPL on addr. When shared is non-nil every
// connected session evaluates against it under a shared lock instead of
// getting its own environment.
func serveNetwork(addr string, shared *value.Environment) {
	server := repl.NewServer(shared)
	mux := http.NewServeMux()
	mux.Handle("/repl", server)

	log.Printf("wisp: network REPL listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("wisp: network REPL failed: %v", err)
	}
}
