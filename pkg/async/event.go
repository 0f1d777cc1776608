package async

import (
	"bufio"
	"os"
)

// EnterKey returns a channel that closes once a line arrives on stdin.
// cmd/live blocks on this to keep a full-duplex ASIO session alive until
// the operator presses Enter to tear it down.
func EnterKey() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		bufio.NewReader(os.Stdin).ReadBytes('\n')
		close(done)
	}()
	return done
}
