package accounts

import (
	"testing"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_NameThenCode(t *testing.T) {
	d := Default()

	assert.Equal(t, []entity.Metric{entity.MetricNetSales}, d.Lookup("  Net   SALES ", ""))
	assert.Equal(t, []entity.Metric{entity.MetricNetSales}, d.Lookup("unknown label", "4100"))
	assert.Empty(t, d.Lookup("misc income", "9999"))
}

func TestLookup_NameWinsOverCode(t *testing.T) {
	d := MustNew(Config{
		"net_sales": {Names: []string{"net sales"}},
		"rent":      {Codes: []string{"6200"}},
	})
	assert.Equal(t, []entity.Metric{entity.MetricNetSales}, d.Lookup("net sales", "6200"))
}

func TestLookup_AccountFeedsSeveralMetrics(t *testing.T) {
	d := MustNew(Config{
		"net_sales":       {Names: []string{"net sales"}},
		"selling_expense": {Names: []string{"rent", "selling expense"}},
		"rent":            {Names: []string{"Rent"}},
	})
	assert.ElementsMatch(t, []entity.Metric{entity.MetricSellingExpense, entity.MetricRent}, d.Lookup("rent", ""))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(Config{"net_sales": {Names: []string{"net sales"}}, "bogus": {Names: []string{"x"}}})
	assert.ErrorContains(t, err, "unknown metric")

	_, err = New(Config{"rent": {Names: []string{"rent"}}})
	assert.ErrorContains(t, err, "net_sales")

	_, err = New(Config{"net_sales": {}})
	assert.ErrorContains(t, err, "no account names")
}

func TestMetrics_CanonicalOrder(t *testing.T) {
	d := Default()
	ms := d.Metrics()
	require.NotEmpty(t, ms)
	assert.Equal(t, entity.MetricNetSales, ms[0])
	assert.False(t, d.Has(entity.MetricDirectCost))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "gross profit", Normalize("\tGross\n Profit "))
	assert.Equal(t, Normalize("SELLING Expense"), Normalize("selling expense"))
}
