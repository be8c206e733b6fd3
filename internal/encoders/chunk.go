package encoders

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

const (
	chunkIHDR = "IHDR"
	chunkIDAT = "IDAT"
	chunkIEND = "IEND"

	ihdrLen = 13
	// length + type + crc
	chunkOverhead = 12

	maxDimension = 1<<31 - 1
)

// writeChunk frames payload as length(4, big-endian) | type | payload | crc32(type | payload)
func writeChunk(w *bytes.Buffer, typ string, payload []byte) {
	var lengthBuf [4]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(payload)))
	w.Write(lengthBuf[:])

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(payload)

	w.WriteString(typ)
	w.Write(payload)

	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc.Sum32())
	w.Write(crcBuf[:])
}
