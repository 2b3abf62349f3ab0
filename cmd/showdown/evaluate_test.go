package main

import (
	"bytes"
	"testing"

	"fivecardshowdown/pkg/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "commas", input: "14s,13s,12s,11s,10s", want: "A♠ K♠ Q♠ J♠ 10♠"},
		{name: "spaces", input: "As Ks Qs Js Ts", want: "A♠ K♠ Q♠ J♠ 10♠"},
		{name: "mixed", input: " As, Ks  Qs,Js ,Ts ", want: "A♠ K♠ Q♠ J♠ 10♠"},
		{name: "too few cards", input: "As Ks", wantErr: true},
		{name: "duplicate", input: "As Ks Qs Js As", wantErr: true},
		{name: "invalid card", input: "As Ks Qs Js Zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := parseHand(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, hand.String())
		})
	}
}

func TestEvaluateCmd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EvaluateCmd{Cards: "3s 3h 3d 9s 9h"}.run(&buf))
	assert.Contains(t, buf.String(), "Full House")
	assert.Contains(t, buf.String(), "[3 9]")

	assert.Error(t, EvaluateCmd{Cards: "3s 3h"}.run(&buf))
}

func TestCompareCmd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CompareCmd{Player: "9s 9h 9d 3c 3s", Dealer: "2s 2h 2d 2c 5s"}.run(&buf))
	assert.Contains(t, buf.String(), "Dealer wins with Four of a Kind")

	buf.Reset()
	require.NoError(t, CompareCmd{Player: "10s 10h 9d 7c 4s", Dealer: "10d 10c 9s 7h 3d"}.run(&buf))
	assert.Contains(t, buf.String(), "Player wins with One Pair")

	buf.Reset()
	require.NoError(t, CompareCmd{Player: "2s 3h 4d 5c 7s", Dealer: "2h 3d 4c 5s 7h"}.run(&buf))
	assert.Contains(t, buf.String(), "Tie with High Card")

	err := CompareCmd{Player: "10s 10h 9d 7c 4s", Dealer: "10s 10c 9s 7h 3d"}.run(&buf)
	assert.ErrorIs(t, err, deck.ErrDuplicateCard)

	err = CompareCmd{Player: "10s 10h 9d 7c 4s", Dealer: "10d"}.run(&buf)
	assert.EqualError(t, err, "dealer: hand must contain 5 cards, got 1")
}

func TestNewLogger(t *testing.T) {
	logger, closer, err := newLogger("", "debug")
	require.NoError(t, err)
	defer closer()
	assert.Equal(t, "debug", logger.GetLevel().String())

	path := t.TempDir() + "/game.log"
	logger, closer, err = newLogger(path, "bogus")
	require.NoError(t, err)
	logger.Info("round started")
	closer()
	assert.FileExists(t, path)
}
