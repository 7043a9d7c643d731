package parser

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/richardlehane/mscfb"
)

// Container identifies the file container a workbook is stored in.
type Container int

const (
	// ContainerUnknown is neither a ZIP nor an OLE2 compound file.
	ContainerUnknown Container = iota
	// ContainerZip is an OOXML package (xlsx, xlsm).
	ContainerZip
	// ContainerEncrypted is a password-protected OOXML package wrapped in OLE2.
	ContainerEncrypted
	// ContainerLegacyXLS is a BIFF workbook (xls).
	ContainerLegacyXLS
	// ContainerOLE is any other OLE2 compound file.
	ContainerOLE
)

func (c Container) String() string {
	switch c {
	case ContainerZip:
		return "zip"
	case ContainerEncrypted:
		return "encrypted ooxml"
	case ContainerLegacyXLS:
		return "legacy xls"
	case ContainerOLE:
		return "ole2"
	}
	return "unknown"
}

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// SniffContainer inspects the leading bytes of the file at path and, for
// OLE2 files, the names of its streams. Only I/O failures are returned as
// errors; a malformed compound file is reported as ContainerOLE.
func SniffContainer(path string) (Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return ContainerUnknown, err
	}
	defer f.Close()

	head := make([]byte, len(oleMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return ContainerUnknown, err
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return ContainerZip, nil
	case bytes.Equal(head, oleMagic):
		return sniffCompound(f), nil
	}
	return ContainerUnknown, nil
}

func sniffCompound(ra io.ReaderAt) Container {
	doc, err := mscfb.New(ra)
	if err != nil {
		return ContainerOLE
	}

	kind := ContainerOLE
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "EncryptionInfo", "EncryptedPackage":
			return ContainerEncrypted
		case "Workbook", "Book":
			kind = ContainerLegacyXLS
		}
	}
	return kind
}
