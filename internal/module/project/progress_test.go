package project

import (
	"testing"

	"ngo-admin-system/internal/model"

	"github.com/stretchr/testify/require"
)

func TestComputeFunding(t *testing.T) {
	projects := []model.Project{
		{Name: "Clean Water Initiative", Budget: 10000},
		{Name: "Education for All", Budget: 0},
	}
	donations := []model.Donation{
		{ProjectName: "Clean Water Initiative", Amount: 100, Currency: model.CurrencyUSD},
		{ProjectName: "Clean Water Initiative", Amount: 5000, Currency: model.CurrencyINR},
		{ProjectName: "Education for All", Amount: 200, Currency: model.CurrencyINR},
		{ProjectName: "Nonexistent Project", Amount: 999, Currency: model.CurrencyINR},
	}

	entries := ComputeFunding(projects, donations)
	require.Len(t, entries, 2)

	// 100 USD×80 + 5000 INR = 13000，预算 10000，超募不封顶
	water := entries[0]
	require.Equal(t, "Clean Water Initiative", water.Name)
	require.InDelta(t, 13000, water.RaisedINR, 1e-9)
	require.InDelta(t, 130, water.Progress, 1e-9)

	// 预算为 0 时进度记 0
	edu := entries[1]
	require.InDelta(t, 200, edu.RaisedINR, 1e-9)
	require.Zero(t, edu.Progress)
}

func TestComputeFundingEmpty(t *testing.T) {
	require.Empty(t, ComputeFunding(nil, nil))

	entries := ComputeFunding([]model.Project{{Name: "Solo", Budget: 500}}, nil)
	require.Len(t, entries, 1)
	require.Zero(t, entries[0].RaisedINR)
	require.Zero(t, entries[0].Progress)
}
