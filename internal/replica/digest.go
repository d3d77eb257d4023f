// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package replica

import (
	"encoding/json"

	"github.com/avdeenko/biograph/models"
	"github.com/cespare/xxhash/v2"
)

// Digest returns a content hash of a document snapshot. Struct field order
// makes the JSON encoding canonical, so equal states always hash equal.
// Used to drop no-op snapshot deliveries before they reach subscribers.
func Digest(s models.DocumentState) uint64 {
	raw, err := json.Marshal(s)
	if err != nil {
		// DocumentState contains no unmarshalable types; keep the signature
		// clean and make equal-on-error states compare equal.
		return 0
	}
	return xxhash.Sum64(raw)
}
