// Package main supervises the calorie, dining and workout servers in one
// container.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
)

// defaultBinDir holds the service binaries in the container image.
const defaultBinDir = "/app"

// services lists the supervised binaries in start order.
var services = []string{"dining", "calorie", "workout"}

// childProcess describes a managed child command.
type childProcess struct {
	name string
	cmd  *exec.Cmd
}

// processExit reports a child process exit result.
type processExit struct {
	name string
	err  error
}

func main() {
	log.SetPrefix("[ENTRYPOINT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	binDir := getenvDefault("CALORIE_SPACE_BIN_DIR", defaultBinDir)
	children := make([]*childProcess, 0, len(services))
	for _, name := range services {
		child, err := startChild(name, exec.Command(filepath.Join(binDir, name)))
		if err != nil {
			terminateChildren(children)
			log.Fatalf("failed to start %s server: %v", name, err)
		}
		children = append(children, child)
	}

	exitCh := make(chan processExit, len(children))
	for _, child := range children {
		go waitChild(child, exitCh)
	}

	select {
	case <-ctx.Done():
		log.Printf("shutdown signal received")
		terminateChildren(children)
		waitForChildren(exitCh, len(children), timeouts.Shutdown, children)
	case exit := <-exitCh:
		log.Printf("%s exited: %v", exit.name, exit.err)
		terminateChildren(children)
		waitForChildren(exitCh, len(children)-1, timeouts.Shutdown, children)
		os.Exit(exitCode(exit.err))
	}
}

// startChild starts a child process with inherited stdio and environment.
func startChild(name string, cmd *exec.Cmd) (*childProcess, error) {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	return &childProcess{name: name, cmd: cmd}, nil
}

func waitChild(child *childProcess, exitCh chan<- processExit) {
	err := child.cmd.Wait()
	exitCh <- processExit{name: child.name, err: err}
}

// terminateChildren sends SIGTERM to every started child.
func terminateChildren(children []*childProcess) {
	for _, child := range children {
		if child == nil || child.cmd == nil || child.cmd.Process == nil {
			continue
		}
		_ = child.cmd.Process.Signal(syscall.SIGTERM)
	}
}

// waitForChildren waits for the remaining exits or kills stragglers after
// timeout.
func waitForChildren(exitCh <-chan processExit, remaining int, timeout time.Duration, children []*childProcess) {
	if remaining <= 0 {
		return
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for remaining > 0 {
		select {
		case exit := <-exitCh:
			log.Printf("%s stopped", exit.name)
			remaining--
		case <-timer.C:
			forceKill(children)
			return
		}
	}
}

// forceKill sends SIGKILL to every started child. Killing an exited child
// fails with os.ErrProcessDone, which is ignored.
func forceKill(children []*childProcess) {
	for _, child := range children {
		if child == nil || child.cmd == nil || child.cmd.Process == nil {
			continue
		}
		if err := child.cmd.Process.Kill(); err == nil {
			log.Printf("killed %s", child.name)
		}
	}
}

// exitCode derives a process exit code from a wait error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
