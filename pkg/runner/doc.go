/*
Package runner implements the interaction loop and I/O orchestration for pitchflow.

It acts as the bridge between a Navigator (the traversal engine) and the outside
world. Every turn the runner resolves the current view, hands a Frame to the
IOHandler, reads one command and applies it.

# Key Components

  - Runner: The loop; stops on quit, end of input or context cancellation.
  - IOHandler: Decouples how frames are shown and commands are read.
  - TextHandler: Glamour-rendered Markdown and a "> " prompt for terminals.
  - JSONHandler: One JSON object per line for hosts driving pitchflow over stdio.

# Commands

An option number, an option id, "select <id>", b/back, r/restart, q/quit.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewJSONHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx, engine); err != nil {
		log.Fatal(err)
	}
*/
package runner
