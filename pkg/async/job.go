package async

// Job runs f on its own goroutine and closes the returned channel once f
// returns. cmd/live wraps its stdin-reading/encoding loop in Job instead
// of a bare goroutine so the background work is a named, awaitable value.
func Job(f func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		f()
		close(done)
	}()
	return done
}
