package cli

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"
)

type ExecFunc func(line string)
type CompleteFunc func(d prompt.Document) []prompt.Suggest

// MainLoop runs interactive prompt when stdin is terminal,
// otherwise executes every non-empty line from stdin.
// On termination signal stop is called before exit.
func MainLoop(tag string, exec ExecFunc, complete CompleteFunc, stop func()) error {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		for range signalCh {
			if stop != nil {
				stop()
			}
			os.Exit(1)
		}
	}()

	if isatty.IsTerminal(os.Stdin.Fd()) {
		prompt.New(prompt.Executor(exec), prompt.Completer(complete),
			prompt.OptionPrefix(tag+"> "),
			prompt.OptionTitle(tag),
		).Run()
		return nil
	}
	return ReadLines(os.Stdin, exec)
}

func ReadLines(r io.Reader, exec ExecFunc) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exec(line)
	}
	return scanner.Err()
}

// Completer suggests first word from commands.
func Completer(commands []prompt.Suggest) CompleteFunc {
	return func(d prompt.Document) []prompt.Suggest {
		if strings.Contains(d.TextBeforeCursor(), " ") {
			return nil
		}
		return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
	}
}
