package png

import "hash/crc32"

// Checksum returns the PNG chunk CRC-32 of data. Pass 0 as seed to start a
// new checksum or a previous result to continue it, so
// Checksum(Checksum(0, a), b) equals the checksum of a followed by b.
func Checksum(seed uint32, data []byte) uint32 {
	return crc32.Update(seed, crc32.IEEETable, data)
}
