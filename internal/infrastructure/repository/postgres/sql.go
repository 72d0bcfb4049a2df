package postgres

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"
)

var jsonNull = []byte("null")

// decodeJSONB decodes a jsonb column into dst. SQL NULL and JSON null leave dst untouched.
func decodeJSONB(raw []byte, dst any, column string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", column, err)
	}
	return nil
}
