package badger

import (
	"fmt"

	"github.com/poiesic/notematch/core"
)

// Key prefixes for different data types
const (
	vocabularyEntryPrefix = "vocent:"
	vocabularySeqName     = "vocentseq"
)

// makeEntryKey generates a key for a vocabulary entry by ID.
func makeEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s%d", vocabularyEntryPrefix, id))
}
