package main

import (
	"bufio"
	"fmt"
	"git.sr.ht/~sircmpwn/getopt"
	"github.com/Zydiii/Minimal-BASIC-Interpreter/internal/basic"
	"golang.org/x/term"
	"os"
	"os/signal"
	"syscall"
)

const usage = "Usage: minibasic [-d] [-h] [-n] [-s] [program]"

var cleanup = func() {}

func main() {

	//
	// Make sure the terminal is back in cooked mode however we leave
	//

	defer func() {
		cleanup()
	}()

	opts, optind, err := getopt.Getopts(os.Args, "dhns")
	if err != nil {
		crash(fmt.Sprintf("%v\n%s", err, usage))
	}

	cfg := basic.Config{Color: true}

	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			cfg.TraceDump = true

		case 'h':
			fmt.Println(usage)
			return

		case 'n':
			cfg.Color = false

		case 's':
			cfg.Stats = true
		}
	}

	args := os.Args[optind:]
	if len(args) > 1 {
		crash(usage)
	}

	cfg.Interactive = term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Color = false
	}

	var con *basic.Console

	if cfg.Interactive {
		var cmdIn, inputIn basic.LineReader
		cmdIn, inputIn, cleanup = basic.NewLinerReaders()
		con = basic.NewConsole(cfg, cmdIn, inputIn, os.Stdout)
	} else {
		in := basic.NewBufioReader(os.Stdin, os.Stdout)
		con = basic.NewConsole(cfg, in, in, os.Stdout)
	}

	con.SetCrashHandler(crash)

	ip := basic.NewInterpreter(cfg, con)

	go sigHdlr(ip)

	if len(args) == 1 && loadProgram(ip, args[0]) {
		exit(0)
	}

	if cfg.Interactive {
		fmt.Printf("Minimal BASIC %s - type HELP for help\n", basic.VERSION)
	}

	if _, err := ip.Loop(); err != nil {
		crash(fmt.Sprintf("read error: %v", err))
	}

	//
	// QUIT and end of input both end the session normally
	//

	exit(0)
}

//
// Feed a program file through the interpreter, a line at a time,
// exactly as if it had been typed.  Returns true if it said QUIT
//

func loadProgram(ip *basic.Interpreter, filename string) bool {

	f, err := os.Open(filename)
	if err != nil {
		crash(fmt.Sprintf("Unable to open %s (%v)", filename, err))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if ip.ProcessLine(scanner.Text()) {
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		crash(fmt.Sprintf("Unable to read %s (%v)", filename, err))
	}

	return false
}

//
// ^C stops a running program.  With nothing running, it ends the
// session, same as it would for any other command line tool
//

func sigHdlr(ip *basic.Interpreter) {

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, syscall.SIGINT)

	for range ch {
		if !ip.Interrupt() {
			cleanup()
			os.Exit(130)
		}
	}
}

func exit(code int) {

	cleanup()

	os.Exit(code)
}

//
// Print a fatal message to standard error and abort.  Restore the
// terminal first, or the message may be unreadable
//

func crash(msg string) {

	cleanup()

	if msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}

	os.Exit(1)
}
