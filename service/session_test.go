package service_test

import (
	"testing"

	"github.com/lookbusy1344/go-printf/printf"
	"github.com/lookbusy1344/go-printf/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RunSuccessRecordsHistoryAndOutput(t *testing.T) {
	s := service.NewSession(printf.DefaultPolicy())

	result := s.Run("%2$s %1$d", []any{7, "hi"})
	require.Equal(t, service.StateOK, result.State)
	assert.Equal(t, "hi 7", result.Output)
	assert.Equal(t, 4, result.ByteCount)
	require.Len(t, result.Directives, 2)
	assert.Equal(t, 2, result.Directives[0].Position)
	assert.Equal(t, 1, result.Directives[1].Position)

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, "hi 7", history[0].Output)

	assert.Equal(t, "hi 7", s.Output())
	assert.Equal(t, "", s.Output(), "Output should drain the buffer")
}

func TestSession_RunFailureRecordsErrorState(t *testing.T) {
	s := service.NewSession(printf.DefaultPolicy())

	result := s.Run("%f", []any{1.5})
	assert.Equal(t, service.StateError, result.State)
	assert.NotEmpty(t, result.Err)

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, service.StateError, history[0].State)
}

func TestSession_NotifyReceivesOutputChunks(t *testing.T) {
	s := service.NewSession(printf.DefaultPolicy())

	var chunks []string
	s.SetNotify(func(chunk string) {
		chunks = append(chunks, chunk)
	})

	s.Run("%d", []any{42})
	require.Len(t, chunks, 1)
	assert.Equal(t, "42", chunks[0])
}

func TestSession_ClearHistory(t *testing.T) {
	s := service.NewSession(printf.DefaultPolicy())
	s.Run("%d", []any{1})
	require.Len(t, s.History(), 1)

	s.ClearHistory()
	assert.Empty(t, s.History())
}

func TestSession_HistoryIsBounded(t *testing.T) {
	s := service.NewSession(printf.DefaultPolicy())
	for i := 0; i < 600; i++ {
		s.Run("%d", []any{i})
	}
	assert.Len(t, s.History(), 500)
}
