/*
Package runner implements the interactive loop and I/O orchestration for the
Morse transcoder.

It bridges a live session (english and Morse buffers kept in sync) and the
outside world. Lines arrive through a pluggable IOHandler; each line is either
a command or a new buffer for one side of the session.

# Key Components

  - Runner: reads lines until EOF, ":quit" or context cancellation.
  - IOHandler: decouples how lines are read and results presented.
  - TextHandler: interactive terminal usage with an optional renderer.
  - JSONHandler: newline-delimited JSON for scripted hosts.
  - SanitizeInput: the input guard shared by every host.

# Commands

	:english   treat following lines as english
	:morse     treat following lines as Morse
	:auto      detect the side of each line (default)
	:show      print both buffers
	:quit      leave the loop

# Usage

	sess := session.New("repl", transcoder, nil)
	r := runner.NewRunner(sess,
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
