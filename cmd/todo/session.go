package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/store"
)

// session bundles what every command needs: the effective config, the
// persistence store, the operation log, and the prompt input. One
// session is built per invocation; nothing outlives the process.
type session struct {
	cfg *store.Config
	st  *store.Store
	log *logging.Logger

	// in is the shared reader for interactive prompts. Commands that
	// prompt more than once must go through the same reader, or piped
	// input buffered past the first line would be lost.
	in *bufio.Reader
}

// openSession reads .todoconfig.toml from the working directory, opens
// the log sink, and opens the store. A log that cannot be opened is
// downgraded to a warning; the sink must never block an operation.
func openSession() (*session, error) {
	cfg, err := store.LoadConfig(".")
	if err != nil {
		return nil, err
	}

	log, err := logging.Open(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Yellow("warning: "+err.Error()))
		log = nil
	}

	return &session{
		cfg: cfg,
		st:  store.Open(cfg, log),
		log: log,
		in:  bufio.NewReader(os.Stdin),
	}, nil
}

// close releases the log sink.
func (s *session) close() {
	s.log.Close()
}

// warnDegraded tells the user an existing todo file could not be read
// in the configured format and the command proceeded with an empty
// collection. Details are in the log.
func (s *session) warnDegraded() {
	msg := fmt.Sprintf("warning: %s could not be read as %s; continuing with an empty list",
		s.st.Path(), s.st.Format())
	fmt.Fprintln(os.Stderr, cli.Yellow(msg))
}
