package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	var payload struct {
		TTL Duration `json:"ttl"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"ttl":"24h"}`), &payload))
	require.Equal(t, 24*time.Hour, payload.TTL.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"ttl":5000000000}`), &payload))
	require.Equal(t, 5*time.Second, payload.TTL.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"ttl":true}`), &payload))
	require.Error(t, json.Unmarshal([]byte(`{"ttl":"not-a-duration"}`), &payload))
}

func TestDurationMarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(Duration{90 * time.Minute})
	require.NoError(t, err)
	require.JSONEq(t, `"1h30m0s"`, string(out))
}
