// Command arraylab runs the interactive array tutorial shell on the
// terminal. It takes no flags and reads no configuration; the menus on
// standard input are the whole interface.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arraylab/pkg/log"
	"arraylab/shell"
)

func main() {
	log.SetupLogger("warn")

	// An interrupt at any prompt terminates the loop with a farewell; the
	// shell itself never sees the signal because it blocks on stdin.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\n\nGoodbye! Thanks for using arraylab!")
		os.Exit(130)
	}()

	sh := shell.New(os.Stdin, os.Stdout)
	if err := sh.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
