// Command chatcards shows a conversation as a scrollable list of message
// cards that expand and collapse when tapped.
//
// Usage:
//
//	chatcards [flags]
//	chatcards seed [path]
//
// Flags:
//
//	--messages string   Path to a JSON message fixture (env CHATCARDS_MESSAGES)
//	--theme string      Path to a YAML theme override file (env CHATCARDS_THEME)
//	--mode string       Display mode: auto, light, dark (env CHATCARDS_MODE)
//	--no-animation      Switch card colors without easing
//	--retain int        Cards kept realized beyond the screen on each side (default 2)
//	--debug             Write debug logs to --log-file
//	--log-file string   Debug log path (default chatcards-debug.log)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Getenv).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatcards: %v\n", err)
		os.Exit(1)
	}
}
