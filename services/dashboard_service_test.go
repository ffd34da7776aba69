package services

import (
	"testing"
	"time"

	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourLabel(t *testing.T) {
	cases := map[string]string{
		"00": "12 AM",
		"01": "1 AM",
		"09": "9 AM",
		"11": "11 AM",
		"12": "12 PM",
		"13": "1 PM",
		"14": "2 PM",
		"23": "11 PM",
	}
	for in, want := range cases {
		assert.Equal(t, want, HourLabel(in), in)
	}
	// unparseable buckets pass through
	assert.Equal(t, "bogus", HourLabel("bogus"))
}

func TestDashboardAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db))

	user := userWithAddress(t, db, "jacob@example.com")
	tacos := newTestItem(t, db, "Carne Asada Tacos", "11.00")
	flan := newTestItem(t, db, "Flan", "5.00")

	// Monday 2 PM and Tuesday 2 PM, UTC
	monday := time.Date(2026, 8, 24, 14, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	for i, ts := range []time.Time{monday, tuesday} {
		order := entity.Order{UserID: user.ID, OrderTime: ts, DeliveryTime: ts.Add(30 * time.Minute)}
		require.NoError(t, db.Create(&order).Error)
		require.NoError(t, db.Create(&entity.OrderItem{OrderID: order.ID, MenuItemID: tacos.ID, Quantity: 2 + i}).Error)
		require.NoError(t, db.Create(&entity.OrderItem{OrderID: order.ID, MenuItemID: flan.ID, Quantity: 1}).Error)
	}

	dash, err := svc.Build()
	require.NoError(t, err)

	// top items ordered by total quantity sold
	require.Len(t, dash.TopItems, 2)
	assert.Equal(t, "Carne Asada Tacos", dash.TopItems[0].Name)
	assert.Equal(t, 5, dash.TopItems[0].Quantity)
	assert.Equal(t, "Flan", dash.TopItems[1].Name)
	assert.Equal(t, 2, dash.TopItems[1].Quantity)

	byDay := map[string]int{}
	for _, d := range dash.OrdersByDay {
		byDay[d.DayOfWeek] = d.Quantity
	}
	assert.Equal(t, 1, byDay["Monday"])
	assert.Equal(t, 1, byDay["Tuesday"])

	require.Len(t, dash.OrdersByHour, 1)
	assert.Equal(t, "2 PM", dash.OrdersByHour[0].TimeOfDay)
	assert.Equal(t, 2, dash.OrdersByHour[0].Quantity)

	require.Len(t, dash.OrdersByZip, 1)
	assert.Equal(t, "34102", dash.OrdersByZip[0].ZipCode)
	assert.Equal(t, 2, dash.OrdersByZip[0].Quantity)
}

func TestDashboardEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db))

	dash, err := svc.Build()
	require.NoError(t, err)
	assert.Empty(t, dash.TopItems)
	assert.Empty(t, dash.OrdersByDay)
	assert.Empty(t, dash.OrdersByHour)
	assert.Empty(t, dash.OrdersByZip)
}
