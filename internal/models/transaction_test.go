package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTransactionType(t *testing.T) {
	assert.True(t, ValidTransactionType(TypeIncome))
	assert.True(t, ValidTransactionType(TypeExpense))
	assert.False(t, ValidTransactionType("donation"))
	assert.False(t, ValidTransactionType(""))
	assert.False(t, ValidTransactionType("Income"))
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2025, time.March, 14))
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14"`, string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-14"`), &d))
	assert.Equal(t, NewDate(2025, time.March, 14), d)

	assert.Error(t, json.Unmarshal([]byte(`"14/03/2025"`), &d))
}

func TestCreateRequestOmittedUserID(t *testing.T) {
	var req CreateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount":5,"category":"misc"}`), &req))
	assert.Nil(t, req.UserID, "absent user_id must decode as nil so the handler can apply the default")
}
