package sauce

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

var errFileTooLarge = errors.New("sauce: file too large to map")

// File is a read-only view of a file on disk.
type File struct {
	Data    []byte
	mmapped bool
}

// OpenFile maps path read-only. If mmap is unavailable, it falls back to
// ReadAt-based loading. The returned file must be closed to release any mapping.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := stat.Size()
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		return nil, errFileTooLarge
	}
	size := int(size64)

	// Zero length mappings are rejected by the kernel.
	if size > 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
		if err == nil {
			return &File{Data: data, mmapped: true}, nil
		}
	}

	data, err := readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}

// OpenReaderAt loads size bytes from r without mmap.
func OpenReaderAt(r io.ReaderAt, size int64) (*File, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, errFileTooLarge
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// Record reads the trailer of the file. See Read.
func (f *File) Record() (*Record, error) { return Read(f.Data) }

// Locate finds the trailer of the file. See Locate.
func (f *File) Locate() (Location, bool) { return Locate(f.Data) }

// Content returns the file bytes with mode applied. The result aliases the
// mapping and is invalid after Close.
func (f *File) Content(mode StripMode) StripResult { return StripWithStats(f.Data, mode) }

// Close releases the mapping, if any.
func (f *File) Close() error {
	if f == nil || f.Data == nil {
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.Data)
	}
	f.Data = nil
	f.mmapped = false
	return err
}
