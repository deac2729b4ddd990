package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesOmittedNullAndValue(t *testing.T) {
	var req TravelInfoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"arrival_date":"2026-11-18","departure_date":null}`), &req))

	assert.True(t, req.ArrivalDate.Set)
	assert.False(t, req.ArrivalDate.Null)
	assert.Equal(t, "2026-11-18", req.ArrivalDate.Value)

	assert.True(t, req.DepartureDate.Set)
	assert.True(t, req.DepartureDate.Null)

	assert.False(t, req.NeedsPickup.Set)
}

func TestOptionalApplyTo(t *testing.T) {
	keep := "keep"

	t.Run("omitted leaves destination", func(t *testing.T) {
		dst := &keep
		Optional[string]{}.ApplyTo(&dst)
		require.NotNil(t, dst)
		assert.Equal(t, "keep", *dst)
	})

	t.Run("null clears", func(t *testing.T) {
		dst := &keep
		Null[string]().ApplyTo(&dst)
		assert.Nil(t, dst)
	})

	t.Run("value overwrites", func(t *testing.T) {
		dst := &keep
		Some("new").ApplyTo(&dst)
		require.NotNil(t, dst)
		assert.Equal(t, "new", *dst)
		assert.Equal(t, "keep", keep)
	})
}

func TestNormalizeAliases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]interface{}
	}{
		{
			name: "alias renamed",
			in:   `{"country":"Jordan","number_of_guests":2}`,
			want: map[string]interface{}{"country_of_origin": "Jordan", "number_of_attendees": float64(2)},
		},
		{
			name: "canonical wins",
			in:   `{"title":"Alias","activity_name":"Canonical"}`,
			want: map[string]interface{}{"activity_name": "Canonical"},
		},
		{
			name: "names combined",
			in:   `{"first_name":" Amira ","last_name":"Haddad"}`,
			want: map[string]interface{}{"full_name": "Amira Haddad"},
		},
		{
			name: "full name kept over parts",
			in:   `{"full_name":"A. Haddad","first_name":"Amira"}`,
			want: map[string]interface{}{"full_name": "A. Haddad"},
		},
		{
			name: "nested colors",
			in:   `{"color_palette":[{"color_name":"Gold","color_code":"#D4AF37"}]}`,
			want: map[string]interface{}{"color_palette": []interface{}{
				map[string]interface{}{"name": "Gold", "hex": "#D4AF37"},
			}},
		},
		{
			name: "chat history",
			in:   `{"message":"hi","conversation_history":[{"role":"user","content":"hello"}]}`,
			want: map[string]interface{}{"message": "hi", "history": []interface{}{
				map[string]interface{}{"role": "user", "content": "hello"},
			}},
		},
		{
			name: "feedback flag",
			in:   `{"log_id":"x","was_helpful":false}`,
			want: map[string]interface{}{"log_id": "x", "helpful": false},
		},
		{
			name: "bulk guests",
			in:   `{"guests":[{"first_name":"Sofia","last_name":"Rossi","country":"Italy"}]}`,
			want: map[string]interface{}{"guests": []interface{}{
				map[string]interface{}{"full_name": "Sofia Rossi", "country_of_origin": "Italy"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NormalizeAliases([]byte(tt.in))
			require.NoError(t, err)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(out, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChatRequestsAcceptClientFieldNames(t *testing.T) {
	out, err := NormalizeAliases([]byte(`{"message":"hi","conversation_history":[{"role":"user","content":"hello"}]}`))
	require.NoError(t, err)
	var chat ChatRequest
	require.NoError(t, json.Unmarshal(out, &chat))
	require.Len(t, chat.History, 1)
	assert.Equal(t, "hello", chat.History[0].Content)

	out, err = NormalizeAliases([]byte(`{"log_id":"6f1c2a52-8c1e-4f7e-9d55-0a4c9a1b2c3d","was_helpful":true}`))
	require.NoError(t, err)
	var feedback ChatFeedbackRequest
	require.NoError(t, json.Unmarshal(out, &feedback))
	require.NotNil(t, feedback.Helpful)
	assert.True(t, *feedback.Helpful)
}

func TestNormalizeAliasesLeavesNonObjects(t *testing.T) {
	out, err := NormalizeAliases([]byte(`[1,2]`))
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(out))

	_, err = NormalizeAliases([]byte(`{"broken"`))
	assert.Error(t, err)
}
