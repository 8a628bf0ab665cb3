//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trip keeps microseconds", func(t *testing.T) {
		at := time.Date(2024, 3, 5, 10, 30, 15, 123456789, time.UTC)
		id := uuid.New()

		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
		require.NoError(t, err)
		assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt))
		assert.Equal(t, id, gotID)
	})

	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }
	invalid := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "unknown version", cursor: encode("v2:1709634615123456-" + uuid.NewString())},
		{name: "missing separator", cursor: encode("v1:1709634615123456")},
		{name: "bad timestamp", cursor: encode("v1:abc-" + uuid.NewString())},
		{name: "bad id", cursor: encode("v1:1709634615123456-not-a-uuid")},
	}
	for _, tc := range invalid {
		t.Run("invalid: "+tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			require.Error(t, err)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	cases := map[int]int{
		-1:  queries.DefaultListLimit,
		0:   queries.DefaultListLimit,
		1:   1,
		50:  50,
		100: 100,
		101: queries.MaxListLimit,
	}
	for in, want := range cases {
		assert.Equal(t, want, queries.ValidateLimit(in), "limit %d", in)
	}
}
