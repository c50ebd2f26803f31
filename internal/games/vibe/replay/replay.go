// Package replay records the input stream of a vibe session and plays it
// back against a fresh session. Files are msgpack encoded.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/engine"
)

// FormatVersion is bumped whenever the file layout changes.
const FormatVersion = 1

var (
	// ErrVersion is returned when a file was written by another format version.
	ErrVersion = errors.New("replay: unsupported format version")
	// ErrMismatch is returned when playback does not reproduce the recording.
	ErrMismatch = errors.New("replay: final state mismatch")
)

// Header describes how the recorded session was created.
type Header struct {
	Version    int               `msgpack:"version"`
	GameID     string            `msgpack:"game"`
	Seed       int64             `msgpack:"seed"`
	TickRate   int               `msgpack:"tick_rate"`
	Config     config.VibeConfig `msgpack:"config"`
	Preset     string            `msgpack:"preset"`
	RecordedAt time.Time         `msgpack:"recorded_at"`
}

// Run is a stretch of identical inputs.
type Run struct {
	Input uint8  `msgpack:"i"`
	Ticks uint32 `msgpack:"n"`
}

// Outcome is the state a playback ends in.
type Outcome struct {
	Ticks int64        `msgpack:"ticks"`
	Hash  uint64       `msgpack:"hash"`
	Score int          `msgpack:"score"`
	Level int          `msgpack:"level"`
	Phase engine.Phase `msgpack:"phase"`
}

// Replay is a complete recording.
type Replay struct {
	Header Header  `msgpack:"header"`
	Runs   []Run   `msgpack:"runs"`
	Final  Outcome `msgpack:"final"`
}

// Ticks returns the number of recorded ticks.
func (r *Replay) Ticks() int64 {
	var n int64
	for _, run := range r.Runs {
		n += int64(run.Ticks)
	}
	return n
}

// Input bits.
const (
	bitUp uint8 = 1 << iota
	bitDown
	bitLeft
	bitRight
	bitPlace
	bitConfirm
)

// Pack encodes an input snapshot into one byte.
func Pack(in engine.Input) uint8 {
	var b uint8
	if in.Up {
		b |= bitUp
	}
	if in.Down {
		b |= bitDown
	}
	if in.Left {
		b |= bitLeft
	}
	if in.Right {
		b |= bitRight
	}
	if in.Place {
		b |= bitPlace
	}
	if in.Confirm {
		b |= bitConfirm
	}
	return b
}

// Unpack is the inverse of Pack.
func Unpack(b uint8) engine.Input {
	return engine.Input{
		Up:      b&bitUp != 0,
		Down:    b&bitDown != 0,
		Left:    b&bitLeft != 0,
		Right:   b&bitRight != 0,
		Place:   b&bitPlace != 0,
		Confirm: b&bitConfirm != 0,
	}
}

// Recorder accumulates inputs tick by tick.
type Recorder struct {
	replay Replay
}

// NewRecorder starts a recording with the given header.
// Version and RecordedAt are filled in when unset.
func NewRecorder(h Header) *Recorder {
	h.Version = FormatVersion
	if h.RecordedAt.IsZero() {
		h.RecordedAt = time.Now().UTC()
	}
	return &Recorder{replay: Replay{Header: h}}
}

// Record appends the input of one tick.
func (r *Recorder) Record(in engine.Input) {
	b := Pack(in)
	if n := len(r.replay.Runs); n > 0 && r.replay.Runs[n-1].Input == b {
		r.replay.Runs[n-1].Ticks++
		return
	}
	r.replay.Runs = append(r.replay.Runs, Run{Input: b, Ticks: 1})
}

// Finish seals the recording with the session's final state.
func (r *Recorder) Finish(s *engine.Session, ticks int64) *Replay {
	r.replay.Final = outcomeOf(s, ticks)
	out := r.replay
	out.Runs = append([]Run(nil), r.replay.Runs...)
	return &out
}

func outcomeOf(s *engine.Session, ticks int64) Outcome {
	return Outcome{
		Ticks: ticks,
		Hash:  s.Snapshot().Hash(),
		Score: s.Score(),
		Level: s.Level(),
		Phase: s.Phase(),
	}
}

// Play feeds the recorded inputs into s, a fresh session built from the
// header, and returns where it ends up.
func Play(r *Replay, s *engine.Session) Outcome {
	clock := engine.NewTickClock(r.Header.TickRate)
	for _, run := range r.Runs {
		in := Unpack(run.Input)
		for i := uint32(0); i < run.Ticks; i++ {
			clock.Advance()
			s.Tick(in, clock.NowMillis())
		}
	}
	return outcomeOf(s, clock.Ticks())
}

// Verify plays r back and checks it reproduces the recorded outcome.
func Verify(r *Replay, s *engine.Session) (Outcome, error) {
	got := Play(r, s)
	if got != r.Final {
		return got, fmt.Errorf("%w: hash %016x score %d, recorded hash %016x score %d",
			ErrMismatch, got.Hash, got.Score, r.Final.Hash, r.Final.Score)
	}
	return got, nil
}

// Write encodes r to w.
func Write(w io.Writer, r *Replay) error {
	if err := msgpack.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Read decodes a replay from rd.
func Read(rd io.Reader) (*Replay, error) {
	var r Replay
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if r.Header.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, r.Header.Version)
	}
	return &r, nil
}

// Save writes r to a file.
func Save(path string, r *Replay) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: create %s: %w", path, err)
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a replay file.
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
