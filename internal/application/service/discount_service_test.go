package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceTiers_StoresCanonicalAscendingOrder(t *testing.T) {
	repo := newMemDiscountRepo()
	svc := NewDiscountService(repo)
	ctx := context.Background()

	tiers, err := svc.ReplaceTiers(ctx, []DiscountTierInput{
		{Threshold: 400, Percentage: 10},
		{Threshold: 200, Percentage: 5},
		{Threshold: 600, Percentage: 15},
	})
	require.NoError(t, err)
	require.Len(t, tiers, 3)

	assert.Equal(t, ToCents(200), tiers[0].Threshold)
	assert.Equal(t, ToCents(400), tiers[1].Threshold)
	assert.Equal(t, ToCents(600), tiers[2].Threshold)
	assert.Equal(t, 0, tiers[0].Position)
	assert.Equal(t, 1, tiers[1].Position)
	assert.Equal(t, 2, tiers[2].Position)

	stored, err := svc.ListTiers(ctx)
	require.NoError(t, err)
	assert.Equal(t, tiers, stored)
}

func TestReplaceTiers_EmptyListDisablesDiscounts(t *testing.T) {
	repo := newMemDiscountRepo(tier(200, 5))
	svc := NewDiscountService(repo)
	ctx := context.Background()

	tiers, err := svc.ReplaceTiers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, tiers)

	stored, err := svc.ListTiers(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestReplaceTiers_RejectsInvalidValues(t *testing.T) {
	svc := NewDiscountService(newMemDiscountRepo())
	ctx := context.Background()

	_, err := svc.ReplaceTiers(ctx, []DiscountTierInput{{Threshold: 0, Percentage: 5}})
	assert.Error(t, err)

	_, err = svc.ReplaceTiers(ctx, []DiscountTierInput{{Threshold: 200, Percentage: 0}})
	assert.Error(t, err)

	_, err = svc.ReplaceTiers(ctx, []DiscountTierInput{{Threshold: 200, Percentage: 150}})
	assert.Error(t, err)
}

func TestReplaceTiers_InvalidInputLeavesTableUntouched(t *testing.T) {
	repo := newMemDiscountRepo(tier(200, 5))
	svc := NewDiscountService(repo)
	ctx := context.Background()

	_, err := svc.ReplaceTiers(ctx, []DiscountTierInput{{Threshold: -1, Percentage: 5}})
	require.Error(t, err)

	stored, err := svc.ListTiers(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, ToCents(200), stored[0].Threshold)
}
