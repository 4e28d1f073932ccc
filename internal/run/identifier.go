package run

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// identifierHashLength is how many hex characters of the digest make it into
// the identifier. 64 bits is plenty for a personal run archive.
const identifierHashLength = 16

// Identifier derives the unique key for a run from play_id,
// seed_source_timestamp and seed_played. The same inputs always yield the
// same identifier, which is what makes re-ingestion of the same run file
// idempotent. Empty inputs are valid; they just hash to a less unique key.
func Identifier(playID string, timestamp int64, seed string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s_%d_%s", playID, timestamp, seed)))
	return playID + "_" + hex.EncodeToString(sum[:])[:identifierHashLength]
}
