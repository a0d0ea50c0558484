package queries_test

import (
	"testing"
	"time"

	"tehnoplast/internal/core/application/usecases/queries"
	"tehnoplast/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnpackedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUnpackedOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUnpackedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnpackedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnpackedOrdersQueryIsNotConstructed)
}

func TestNewGetOrderBoardQuery_Valid(t *testing.T) {
	asOf := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	query, err := queries.NewGetOrderBoardQuery(asOf)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, asOf, query.AsOf())
}

func TestNewGetOrderBoardQuery_ZeroDate(t *testing.T) {
	_, err := queries.NewGetOrderBoardQuery(time.Time{})
	require.Error(t, err)
}

func TestGetOrderBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderBoardQueryIsNotConstructed)
}

func TestNewGetPalletPlanQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetPalletPlanQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetPalletPlanQuery_ZeroOrderID(t *testing.T) {
	_, err := queries.NewGetPalletPlanQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetPalletPlanQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPalletPlanQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPalletPlanQueryIsNotConstructed)
}
