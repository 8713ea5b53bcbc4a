package manifest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osheron/destinykit/models"
)

// Lookup fetches one definition from the content store and decodes it into
// T. A missing category or hash surfaces as [store.ErrDefinitionNotFound];
// a payload that exists but does not decode into T surfaces as
// [ErrDefinitionDecode] — never as an absent result.
//
// The store itself stays type-agnostic: decoding is layered on top of the
// raw byte lookup, so any struct matching the stored JSON can be requested.
func Lookup[T any](ctx context.Context, s *Service, table models.DefinitionTable, hash uint32) (T, error) {
	var decoded T

	payload, err := s.Lookup(ctx, table, hash)
	if err != nil {
		return decoded, err
	}

	if err := json.Unmarshal(payload, &decoded); err != nil {
		return decoded, fmt.Errorf("%w: %s[%d]: %v", ErrDefinitionDecode, table.TableName(), hash, err)
	}

	return decoded, nil
}
