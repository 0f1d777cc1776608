package pcm

import (
	"encoding/binary"
	"fmt"
	"os"
)

// ReadBinary reads a flat binary.LittleEndian-encoded slice of T from
// filename, generalized from internel/utils/binaryfile.go's ReadBinary.
// cmd/live uses this to load a previously recorded session back for
// deterministic playback (-playback flag).
func ReadBinary[T any](filename string) ([]T, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", filename, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", filename, err)
	}

	data := make([]T, int(info.Size())/binary.Size(new(T)))
	if err := binary.Read(file, binary.LittleEndian, &data); err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	return data, nil
}

// WriteBinary writes data as a flat binary.LittleEndian-encoded slice to
// filename. cmd/live uses this with its -record flag to capture a raw
// int32 session for later offline decoding or replay.
func WriteBinary[T any](filename string, data []T) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %q: %w", filename, err)
	}
	defer file.Close()

	if err := binary.Write(file, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("writing %q: %w", filename, err)
	}
	return nil
}
