// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/peterh/liner"

	"github.com/thejohnfreeman/xrplorer/fsys"
)

// Shell the command interpreter.
type Shell struct {
	os *OperatingSystem
}

// New creates a shell over the shim.
func New(os *OperatingSystem) *Shell {
	return &Shell{os: os}
}

// Run reads and executes commands until exit or end of input.
// Returns the exit status.
func (s *Shell) Run() int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			return 0
		}
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		if !strings.HasPrefix(input, " ") {
			line.AppendHistory(input)
		}
		status, exit := s.Exec(input)
		if exit {
			return status
		}
	}
}

// Exec splits and runs one command line. The second return value
// tells whether the shell should terminate.
func (s *Shell) Exec(input string) (int, bool) {
	argv, err := shlex.Split(input)
	if err != nil {
		fmt.Fprintf(s.os.Out(), "syntax error: %v\n", err)
		return 1, false
	}
	if len(argv) == 0 {
		return 0, false
	}
	switch argv[0] {
	case "exit":
		return s.exit(argv), true
	case "cat":
		return s.cat(argv), false
	case "cd":
		return s.cd(argv), false
	case "echo":
		return s.echo(argv), false
	case "help":
		return s.help(argv), false
	case "hostname":
		return s.hostname(argv), false
	case "ls":
		return s.ls(argv), false
	case "pwd":
		return s.pwd(argv), false
	}
	fmt.Fprintf(s.os.Out(), "%s: command not found\n", argv[0])
	return 127, false
}

// report formats a resolution failure and returns its exit status.
func (s *Shell) report(cmd string, err error) int {
	var fe *fsys.Error
	if errors.As(err, &fe) {
		fmt.Fprintf(s.os.Out(), "%s: %s: %s\n", cmd, fe.Path, fe.Message)
		return int(fe.Code)
	}
	fmt.Fprintf(s.os.Out(), "%s: %v\n", cmd, err)
	return 1
}

func (s *Shell) cat(argv []string) int {
	for _, arg := range argv[1:] {
		if err := fsys.Resolve(s.os, arg, fsys.CAT); err != nil {
			return s.report(argv[0], err)
		}
	}
	return 0
}

func (s *Shell) cd(argv []string) int {
	arg := "/"
	if len(argv) > 1 {
		arg = argv[1]
	}
	if err := fsys.Resolve(s.os, arg, fsys.CD); err != nil {
		return s.report(argv[0], err)
	}
	return 0
}

func (s *Shell) echo(argv []string) int {
	fmt.Fprintln(s.os.Out(), strings.Join(argv[1:], " "))
	return 0
}

func (s *Shell) exit(argv []string) int {
	if len(argv) == 1 {
		return 0
	}
	if len(argv) == 2 {
		n, err := strconv.Atoi(argv[1])
		if err != nil {
			fmt.Fprintf(s.os.Out(), "%s: %s: numeric argument required\n", argv[0], argv[1])
			return 2
		}
		return n
	}
	fmt.Fprintf(s.os.Out(), "%s: too many arguments\n", argv[0])
	return 1
}

func (s *Shell) help(_ []string) int {
	fmt.Fprint(s.os.Out(), `cat [file]
cd [dir]
echo [arg ...]
exit [n]
help
hostname [name]
ls [dir]
pwd
`)
	return 0
}

func (s *Shell) hostname(argv []string) int {
	if len(argv) > 1 {
		fmt.Fprintf(s.os.Out(), "%s: changing hostname not yet implemented\n", argv[0])
	}
	fmt.Fprintln(s.os.Out(), s.os.Hostname())
	return 0
}

func (s *Shell) ls(argv []string) int {
	args := argv[1:]
	if len(args) == 0 {
		args = []string{"."}
	}
	for _, arg := range args {
		if err := fsys.Resolve(s.os, arg, fsys.LS); err != nil {
			return s.report(argv[0], err)
		}
	}
	return 0
}

func (s *Shell) pwd(_ []string) int {
	fmt.Fprintln(s.os.Out(), s.os.Getcwd())
	return 0
}
