package rw

import "io"

func ReadByte(reader io.Reader) (byte, error) {
	if byteReader, isByteReader := reader.(io.ByteReader); isByteReader {
		return byteReader.ReadByte()
	}
	var b [1]byte
	_, err := io.ReadFull(reader, b[:])
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func ReadBytes(reader io.Reader, size int) ([]byte, error) {
	b := make([]byte, size)
	_, err := io.ReadFull(reader, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}
