package device

// Recorder appends every input buffer it sees to Track, generalized from
// internel/callbacks/recorder.go's multi-channel Update to the single
// []int32 buffer shape Device.Start's callback uses. cmd/live's -record
// flag wraps a live session's input with a Recorder and persists Track
// via pkg/pcm.WriteBinary on Stop.
type Recorder struct {
	Track []int32
}

func (r *Recorder) Record(in []int32) {
	r.Track = append(r.Track, in...)
}

// Player replays a fixed Track into successive output buffers, falling
// back to silence once exhausted, generalized from
// internel/callbacks/player.go. cmd/live's -playback flag uses this to
// feed a previously recorded session to the output channel instead of
// live-encoding stdin, for reproducing a decode run deterministically.
type Player struct {
	idx   int
	Track []int32
}

func (p *Player) Play(out []int32) {
	n := min(len(out), len(p.Track)-p.idx)
	i := 0
	for ; i < n; i++ {
		out[i] = p.Track[p.idx]
		p.idx++
	}
	for ; i < len(out); i++ {
		out[i] = 0
	}
}

func (p *Player) Reset() {
	p.idx = 0
}

func (p *Player) Done() bool {
	return p.idx >= len(p.Track)
}
