package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// canonical is the serialized form hashed into a cache key. Maps are
// marshalled with sorted keys by encoding/json, so qualifier order can
// never change the key.
type canonical struct {
	Kind       string            `json:"type"`
	Query      string            `json:"q"`
	Count      int               `json:"n"`
	Qualifiers map[string]string `json:"x,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Key derives a deterministic cache key from a tool's semantic inputs. The
// query is lowercased and trimmed first, so "Cats" and " cats " collide.
// MD5 is a dedup key here, not a security boundary.
func Key(kind, query string, count int, qualifiers map[string]string) string {
	data, err := json.Marshal(canonical{
		Kind:       kind,
		Query:      strings.TrimSpace(strings.ToLower(query)),
		Count:      count,
		Qualifiers: qualifiers,
	})
	if err != nil {
		// canonical contains only strings and an int; marshalling cannot fail
		panic(err)
	}
	return fmt.Sprintf("%x", md5.Sum(data))
}
