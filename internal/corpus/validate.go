package corpus

import (
	"errors"
	"fmt"
	"io/fs"
)

// DefaultMaxFileSize is the largest file loaded when Options.MaxFileSize is zero
const DefaultMaxFileSize = 1 << 20

// binarySampleSize is how much of a file is inspected for binary content
const binarySampleSize = 8 * 1024

var (
	errTooLarge = errors.New("file exceeds size limit")
	errBinary   = errors.New("file appears to be binary")
)

// checkSize rejects files larger than limit before they are read
func checkSize(fsys fs.FS, path string, limit int64) error {
	info, err := fs.Stat(fsys, path)
	if err != nil {
		return err
	}
	if info.Size() > limit {
		return fmt.Errorf("%w: %d > %d bytes", errTooLarge, info.Size(), limit)
	}
	return nil
}

// checkText rejects content whose leading bytes are mostly control characters
func checkText(content []byte) error {
	if isBinaryData(content[:min(len(content), binarySampleSize)]) {
		return errBinary
	}
	return nil
}

func isBinaryData(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range data {
		// Control characters other than tab, LF, VT, FF and CR, plus DEL
		if b < 9 || (b > 13 && b < 32) || b == 127 {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(data)) > 0.3
}

// skippable reports whether err means the file should be left out rather
// than failing the whole load
func skippable(err error) bool {
	return errors.Is(err, errTooLarge) || errors.Is(err, errBinary)
}
