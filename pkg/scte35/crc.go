package scte35

// CRC-32/MPEG-2 as required by SCTE 35 section 9.6.1: polynomial
// 0x04C11DB7, initial value 0xFFFFFFFF, no input/output reflection, no
// final XOR. Table generation follows the same normal (non-reflected)
// construction used by untangledco/streaming's scte35 package and Go's
// own compress/bzip2, which computes the CRC-32/BZIP2 variant this
// polynomial also produces.
const crc32Poly uint32 = 0x04C11DB7

var crc32Table = makeCRC32Table(crc32Poly)

func makeCRC32Table(poly uint32) [256]uint32 {
	var tab [256]uint32
	for i := range tab {
		crc := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if crc&0x80000000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc = crc << 1
			}
		}
		tab[i] = crc
	}
	return tab
}

// crc32MPEG2 computes the MPEG-2 variant CRC-32 over b: init 0xFFFFFFFF,
// no reflection, no xor-out.
func crc32MPEG2(b []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, v := range b {
		crc = crc32Table[byte(crc>>24)^v] ^ (crc << 8)
	}
	return crc
}
