package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindows(t *testing.T, ss ...string) []kernel.TimeWindow {
	t.Helper()
	windows, err := kernel.ParseTimeWindows(ss)
	require.NoError(t, err)
	return windows
}

func mustCourier(t *testing.T, transport courier.Transport, regions []int64, hours ...string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(1, transport, regions, mustWindows(t, hours...))
	require.NoError(t, err)
	return c
}

func mustOrder(t *testing.T, id int64, weight float64, region int64, hours ...string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, weight, region, mustWindows(t, hours...))
	require.NoError(t, err)
	return o
}

func orderIDs(orders []*order.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}

func TestEligibilityFilter_ByRegion(t *testing.T) {
	filter := services.NewEligibilityFilter()
	c := mustCourier(t, courier.Foot, []int64{1, 22}, "09:00-18:00")

	t.Run("keeps matching regions in input order", func(t *testing.T) {
		candidates := []*order.Order{
			mustOrder(t, 1, 1, 22, "09:00-18:00"),
			mustOrder(t, 2, 1, 5, "09:00-18:00"),
			mustOrder(t, 3, 1, 1, "09:00-18:00"),
		}

		result, err := filter.ByRegion(c, candidates)

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, orderIDs(result))
	})

	t.Run("empty candidates", func(t *testing.T) {
		result, err := filter.ByRegion(c, nil)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("invalid courier", func(t *testing.T) {
		var bad courier.Courier

		_, err := filter.ByRegion(&bad, nil)

		require.ErrorIs(t, err, courier.ErrCourierIsNotConstructed)
	})
}

func TestEligibilityFilter_ByTime(t *testing.T) {
	filter := services.NewEligibilityFilter()
	c := mustCourier(t, courier.Foot, []int64{1}, "09:00-11:00")

	t.Run("boundary-inclusive intersection", func(t *testing.T) {
		candidates := []*order.Order{
			mustOrder(t, 1, 1, 1, "10:30-12:00"), // overlaps 10:30-11:00
			mustOrder(t, 2, 1, 1, "11:00-12:00"), // touches at 11:00
			mustOrder(t, 3, 1, 1, "11:01-12:00"), // just misses
		}

		result, err := filter.ByTime(c, candidates)

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, orderIDs(result))
	})

	t.Run("one intersecting pair qualifies", func(t *testing.T) {
		candidates := []*order.Order{
			mustOrder(t, 1, 1, 1, "06:00-07:00", "10:00-10:15"),
		}

		result, err := filter.ByTime(c, candidates)

		require.NoError(t, err)
		assert.Equal(t, []int64{1}, orderIDs(result))
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		o := mustOrder(t, 1, 1, 1, "09:30-10:00")
		candidates := []*order.Order{o, o}

		result, err := filter.ByTime(c, candidates)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func TestEligibilityFilter_ByWeight(t *testing.T) {
	filter := services.NewEligibilityFilter()

	t.Run("greedy sorts by weight regardless of input order", func(t *testing.T) {
		// Capacity 10: sorted ascending gives [5, 6]; 5 fits, 5+6=11
		// exceeds, so only the 5kg order survives either input order.
		c := mustCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		heavy := mustOrder(t, 1, 6, 1, "09:00-18:00")
		light := mustOrder(t, 2, 5, 1, "09:00-18:00")

		forward, err := filter.ByWeight(c, []*order.Order{heavy, light})
		require.NoError(t, err)
		backward, err := filter.ByWeight(c, []*order.Order{light, heavy})
		require.NoError(t, err)

		assert.Equal(t, []int64{2}, orderIDs(forward))
		assert.Equal(t, []int64{2}, orderIDs(backward))
	})

	t.Run("maximizes count not weight", func(t *testing.T) {
		c := mustCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		candidates := []*order.Order{
			mustOrder(t, 1, 9, 1, "09:00-18:00"),
			mustOrder(t, 2, 4, 1, "09:00-18:00"),
			mustOrder(t, 3, 3, 1, "09:00-18:00"),
			mustOrder(t, 4, 2, 1, "09:00-18:00"),
		}

		result, err := filter.ByWeight(c, candidates)

		require.NoError(t, err)
		// ascending: 2, 3, 4 fit (total 9); 9 would bring it to 18
		assert.Equal(t, []int64{4, 3, 2}, orderIDs(result))
	})

	t.Run("exact capacity fits", func(t *testing.T) {
		c := mustCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		candidates := []*order.Order{
			mustOrder(t, 1, 4, 1, "09:00-18:00"),
			mustOrder(t, 2, 6, 1, "09:00-18:00"),
		}

		result, err := filter.ByWeight(c, candidates)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("equal weights keep input order", func(t *testing.T) {
		c := mustCourier(t, courier.Car, []int64{1}, "09:00-18:00")
		candidates := []*order.Order{
			mustOrder(t, 5, 1, 1, "09:00-18:00"),
			mustOrder(t, 3, 1, 1, "09:00-18:00"),
			mustOrder(t, 9, 1, 1, "09:00-18:00"),
		}

		result, err := filter.ByWeight(c, candidates)

		require.NoError(t, err)
		assert.Equal(t, []int64{5, 3, 9}, orderIDs(result))
	})

	t.Run("single order above capacity yields nothing", func(t *testing.T) {
		c := mustCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		candidates := []*order.Order{mustOrder(t, 1, 11, 1, "09:00-18:00")}

		result, err := filter.ByWeight(c, candidates)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		c := mustCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		heavy := mustOrder(t, 1, 6, 1, "09:00-18:00")
		light := mustOrder(t, 2, 5, 1, "09:00-18:00")
		candidates := []*order.Order{heavy, light}

		_, err := filter.ByWeight(c, candidates)

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, orderIDs(candidates))
	})
}

func TestEligibilityFilter_Eligible(t *testing.T) {
	filter := services.NewEligibilityFilter()

	t.Run("full pipeline narrows in sequence", func(t *testing.T) {
		c := mustCourier(t, courier.Foot, []int64{1, 22}, "09:00-11:00")
		candidates := []*order.Order{
			mustOrder(t, 1, 3, 22, "10:30-12:00"), // passes all three
			mustOrder(t, 2, 3, 5, "10:00-11:00"),  // wrong region
			mustOrder(t, 3, 3, 1, "12:00-13:00"),  // wrong hours
			mustOrder(t, 4, 9, 1, "10:00-11:00"),  // over remaining capacity
			mustOrder(t, 5, 4, 1, "09:00-10:00"),  // passes all three
		}

		result, err := filter.Eligible(c, candidates)

		require.NoError(t, err)
		// weight stage sorts ascending: 3 then 4 fit, 9 would exceed 10
		assert.Equal(t, []int64{1, 5}, orderIDs(result))
	})

	t.Run("no candidates", func(t *testing.T) {
		c := mustCourier(t, courier.Foot, []int64{1}, "09:00-11:00")

		result, err := filter.Eligible(c, nil)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("courier without working hours takes nothing", func(t *testing.T) {
		c := mustCourier(t, courier.Foot, []int64{1})
		candidates := []*order.Order{mustOrder(t, 1, 1, 1, "09:00-18:00")}

		result, err := filter.Eligible(c, candidates)

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
