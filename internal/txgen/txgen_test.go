package txgen

import (
	"testing"

	"github.com/indigo-web/txlog/http"
	"github.com/stretchr/testify/require"
)

func TestTransactions(t *testing.T) {
	var chunked, fixed int

	for _, tx := range Transactions(30) {
		require.NoError(t, tx.Validate())

		for _, body := range []http.Body{tx.Request.Body, tx.Response.Body} {
			switch body.(type) {
			case http.ChunkedBody:
				chunked++
			case http.FixedContent:
				fixed++
			}
		}
	}

	require.NotZero(t, chunked)
	require.NotZero(t, fixed)
}

func TestBody(t *testing.T) {
	body := Body(2500, true).(http.ChunkedBody)
	require.Len(t, body.Chunks, 3)
	require.Equal(t, 2500, body.Len())
	require.Equal(t, 300, Body(300, false).Len())
}
