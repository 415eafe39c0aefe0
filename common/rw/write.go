package rw

import "io"

func WriteByte(writer io.Writer, b byte) error {
	if byteWriter, isByteWriter := writer.(io.ByteWriter); isByteWriter {
		return byteWriter.WriteByte(b)
	}
	_, err := writer.Write([]byte{b})
	return err
}

func WriteBytes(writer io.Writer, b []byte) error {
	_, err := writer.Write(b)
	return err
}
