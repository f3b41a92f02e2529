package build

import (
	"crypto/sha256"
	"fmt"
	"sort"
)

// Digest identifies file or option-set content.
type Digest [sha256.Size]byte

func digestBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// digestOptions produces a stable digest over an option set: keys are
// visited in sorted order and values rendered through fmt, which is
// sufficient for the scalar and string-slice values options hold.
func digestOptions(opts map[string]any) Digest {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	h := sha256.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%v\n", k, opts[k])
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
