package encoders

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"

	"github.com/rviscarra/multi-screenshot/internal/rdisplay"
)

// Signature is the fixed 8-byte PNG file signature
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	bitDepth        = 8
	colorTruecolor  = 2
	compressionZlib = 0
	filterAdaptive  = 0
	interlaceNone   = 0

	scanlineFilterNone = 0
)

// Encode turns an RGB pixel buffer into a complete PNG file. It never
// touches the filesystem and returns an *EncodingError when the buffer size
// does not match its geometry
func Encode(buf rdisplay.PixelBuffer) ([]byte, error) {
	if err := validate(buf); err != nil {
		return nil, err
	}

	idat, err := compress(scanlines(buf))
	if err != nil {
		return nil, err
	}

	out := bytes.NewBuffer(make([]byte, 0, len(Signature)+3*chunkOverhead+ihdrLen+len(idat)))
	out.Write(Signature[:])
	writeChunk(out, chunkIHDR, header(buf.Width, buf.Height))
	writeChunk(out, chunkIDAT, idat)
	writeChunk(out, chunkIEND, nil)
	return out.Bytes(), nil
}

func validate(buf rdisplay.PixelBuffer) error {
	if buf.Width <= 0 || buf.Height <= 0 {
		return newEncodingError(buf, "width and height must be positive")
	}
	if uint64(buf.Width) > maxDimension || uint64(buf.Height) > maxDimension {
		return newEncodingError(buf, "dimension exceeds 2^31-1")
	}
	if len(buf.Pix) != buf.RowLen()*buf.Height {
		return newEncodingError(buf, "pixel data length does not match width*height*3")
	}
	return nil
}

// scanlines prefixes every row with the "none" filter tag
func scanlines(buf rdisplay.PixelBuffer) []byte {
	row := buf.RowLen()
	raw := make([]byte, 0, (row+1)*buf.Height)
	for y := 0; y < buf.Height; y++ {
		raw = append(raw, scanlineFilterNone)
		raw = append(raw, buf.Pix[y*row:(y+1)*row]...)
	}
	return raw
}

func header(width, height int) []byte {
	p := make([]byte, ihdrLen)
	binary.BigEndian.PutUint32(p[0:4], uint32(width))
	binary.BigEndian.PutUint32(p[4:8], uint32(height))
	p[8] = bitDepth
	p[9] = colorTruecolor
	p[10] = compressionZlib
	p[11] = filterAdaptive
	p[12] = interlaceNone
	return p
}

func compress(raw []byte) ([]byte, error) {
	var b bytes.Buffer
	zw := zlib.NewWriter(&b)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
