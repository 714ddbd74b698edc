package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes output to a file descriptor using writev.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return NewFdWriter(int(os.Stdout.Fd()))
}

// NewFdWriter creates a Writer for an already-open file descriptor.
func NewFdWriter(fd int) *Writer {
	return &Writer{fd: fd}
}

// Write writes all of data, retrying short writes and EINTR.
func (w *Writer) Write(data []byte) (int, error) {
	written := 0
	for len(data) > 0 {
		iovs := [][]byte{data}
		n, err := unix.Writev(w.fd, iovs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
		data = data[n:]
	}
	return written, nil
}
