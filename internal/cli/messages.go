package cli

// Fixed user-facing texts.
const (
	MsgHowToWin         = "You can win by selecting moves that defeat the opponent. Ex: Rock crushes Scissors."
	MsgInvalidArguments = "Invalid arguments. Please provide an odd number of non-repeating strings. Ex: rock paper scissors lizard spock."
	MsgInvalidInput     = "Invalid input. choose from the menu!"
	MsgNoChoice         = "No move entered, leaving without a round."

	Prompt      = "Enter your move: "
	TableCorner = `v PC\Player >`
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 2
)
