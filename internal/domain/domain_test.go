package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeStatus_UnmarshalKeepsExtras(t *testing.T) {
	var st ScrapeStatus
	err := json.Unmarshal([]byte(`{"status":"running","message":"page 3","progress":42}`), &st)
	require.NoError(t, err)

	assert.Equal(t, "running", st.Status)
	assert.Equal(t, "page 3", st.Message)
	assert.False(t, st.Terminal())
	require.Contains(t, st.Extra, "progress")
	assert.JSONEq(t, `42`, string(st.Extra["progress"]))
}

func TestScrapeStatus_UnmarshalWithoutExtras(t *testing.T) {
	var st ScrapeStatus
	require.NoError(t, json.Unmarshal([]byte(`{"status":"completed","message":"done"}`), &st))

	assert.Nil(t, st.Extra)
	assert.True(t, st.Terminal())
}

func TestScrapeStatus_MarshalMergesExtras(t *testing.T) {
	st := ScrapeStatus{
		Status:  "failed",
		Message: "boom",
		Extra:   map[string]json.RawMessage{"step": json.RawMessage(`"login"`)},
	}

	data, err := json.Marshal(st)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"failed","message":"boom","step":"login"}`, string(data))
}

func TestPhase_Terminal(t *testing.T) {
	assert.False(t, PhaseIdle.Terminal())
	assert.False(t, PhaseRequesting.Terminal())
	assert.False(t, PhasePolling.Terminal())
	assert.True(t, PhaseCompleted.Terminal())
	assert.True(t, PhaseFailed.Terminal())
}

func TestCar_Title(t *testing.T) {
	assert.Equal(t, "2018 Honda Civic", Car{Year: 2018, Make: "Honda", Model: "Civic"}.Title())
	assert.Equal(t, "Tesla", Car{Make: "Tesla"}.Title())
}

func TestListingState_CloneDoesNotShareListings(t *testing.T) {
	st := ListingState{Listings: []Car{{ID: 1}}}
	cp := st.Clone()
	cp.Listings[0].ID = 2

	assert.Equal(t, int64(1), st.Listings[0].ID)
}

func TestScrapeSession_CloneDoesNotShareStatus(t *testing.T) {
	sess := ScrapeSession{LastStatus: &ScrapeStatus{Status: "running"}}
	cp := sess.Clone()
	cp.LastStatus.Status = "completed"

	assert.Equal(t, "running", sess.LastStatus.Status)
}

func TestScrapeSession_CloneDoesNotShareExtras(t *testing.T) {
	sess := ScrapeSession{LastStatus: &ScrapeStatus{
		Status: "running",
		Extra:  map[string]json.RawMessage{"progress": json.RawMessage(`10`)},
	}}
	cp := sess.Clone()
	cp.LastStatus.Extra["progress"] = json.RawMessage(`90`)
	cp.LastStatus.Extra["step"] = json.RawMessage(`"login"`)

	assert.JSONEq(t, `10`, string(sess.LastStatus.Extra["progress"]))
	assert.NotContains(t, sess.LastStatus.Extra, "step")
}

func TestPreference_Valid(t *testing.T) {
	assert.True(t, PreferenceLike.Valid())
	assert.True(t, PreferenceDislike.Valid())
	assert.False(t, Preference("meh").Valid())
}
