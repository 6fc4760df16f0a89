package board

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
)

// SizeInBytes is the size of a serialized board. There is no header,
// magic number or version; the layout is
//
//	[player1:u64][player2:u64][p1_pieces:u8][p2_pieces:u8]
const SizeInBytes = 18

var ErrIO = errors.New("board i/o error")

// MarshalBinary encodes the board field by field into its 18-byte form.
func (b BitBoard) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SizeInBytes)
	b.encode(buf)
	return buf, nil
}

func (b BitBoard) encode(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], b.Player1)
	binary.LittleEndian.PutUint64(buf[8:16], b.Player2)
	buf[16] = b.P1Pieces
	buf[17] = b.P2Pieces
}

// UnmarshalBinary decodes exactly 18 bytes. The invariant is not checked
// here; callers that load untrusted data should call Verify.
func (b *BitBoard) UnmarshalBinary(data []byte) error {
	if len(data) != SizeInBytes {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrIO, SizeInBytes, len(data))
	}
	b.Player1 = binary.LittleEndian.Uint64(data[0:8])
	b.Player2 = binary.LittleEndian.Uint64(data[8:16])
	b.P1Pieces = data[16]
	b.P2Pieces = data[17]
	return nil
}

// Fingerprint is a hash of the serialized board. It is only used to
// correlate boards in logs.
func (b BitBoard) Fingerprint() uint64 {
	var buf [SizeInBytes]byte
	b.encode(buf[:])
	return xxhash.Sum64(buf[:])
}

// Load reads a board from r. Anything other than a full 18-byte read is
// an error and no partial board is returned.
func Load(r io.Reader) (BitBoard, error) {
	var buf [SizeInBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return BitBoard{}, fmt.Errorf("%w: reading board: %w", ErrIO, err)
	}
	var b BitBoard
	if err := b.UnmarshalBinary(buf[:]); err != nil {
		return BitBoard{}, err
	}
	log.Debug().Uint64("fingerprint", b.Fingerprint()).Msg("loaded board")
	return b, nil
}

// Store writes the 18-byte form of b to w.
func Store(b BitBoard, w io.Writer) error {
	var buf [SizeInBytes]byte
	b.encode(buf[:])
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: writing board: %w", ErrIO, err)
	}
	log.Debug().Uint64("fingerprint", b.Fingerprint()).Msg("stored board")
	return nil
}

// LoadFile reads a board from the file at path.
func LoadFile(path string) (BitBoard, error) {
	f, err := os.Open(path)
	if err != nil {
		return BitBoard{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	return Load(f)
}

// StoreFile writes b to path. The board goes to a temporary file in the
// same directory first and is renamed into place, so a failed store never
// leaves a truncated board behind.
func StoreFile(b BitBoard, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}
	if err := Store(b, tmp); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	log.Debug().Str("path", path).Msg("board file written")
	return nil
}
