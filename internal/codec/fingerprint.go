package codec

import (
	"encoding/binary"
	"fmt"

	"hdxwave/pkg/spec"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identitas tabel: BLAKE2b-256 atas panjang + isi, 12 byte pertama.
func Fingerprint(table []uint8) string {
	buf := make([]byte, 4, 4+len(table))
	binary.BigEndian.PutUint32(buf, uint32(len(table)))
	buf = append(buf, table...)

	sum := blake2b.Sum256(buf)
	return fmt.Sprintf("%s%x", spec.FingerprintPrefix, sum[:12])
}
