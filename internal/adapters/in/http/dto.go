package http

// Request and response bodies of the dispatch API. Couriers and orders are
// created in batches; timestamps on the wire use the microsecond UTC layout
// from the kernel package.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCourier describes one courier in a registration batch.
type NewCourier struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

// CreateCouriersRequest is the body of POST /couriers.
type CreateCouriersRequest struct {
	Data []NewCourier `json:"data"`
}

// IDItem carries one created entity id.
type IDItem struct {
	ID int64 `json:"id"`
}

// CreateCouriersResponse lists the ids of the registered couriers.
type CreateCouriersResponse struct {
	Couriers []IDItem `json:"couriers"`
}

// PatchCourierRequest is the body of PATCH /couriers/:id.
// Absent fields keep their current values.
type PatchCourierRequest struct {
	CourierType  *string  `json:"courier_type,omitempty"`
	Regions      []int64  `json:"regions,omitempty"`
	WorkingHours []string `json:"working_hours,omitempty"`
}

// Courier is the full courier representation.
type Courier struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

// CourierWithStatistics extends Courier with derived metrics.
// Rating is omitted for couriers with no completed deliveries.
type CourierWithStatistics struct {
	Courier
	Rating   float64 `json:"rating,omitempty"`
	Earnings int     `json:"earnings"`
}

// NewOrder describes one order in a registration batch.
type NewOrder struct {
	OrderID       int64    `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int64    `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

// CreateOrdersRequest is the body of POST /orders.
type CreateOrdersRequest struct {
	Data []NewOrder `json:"data"`
}

// CreateOrdersResponse lists the ids of the registered orders.
type CreateOrdersResponse struct {
	Orders []IDItem `json:"orders"`
}

// Order is the full order representation.
type Order struct {
	OrderID       int64    `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int64    `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

// UnassignedOrdersResponse lists the orders awaiting assignment.
type UnassignedOrdersResponse struct {
	Orders []Order `json:"orders"`
}

// AssignOrdersRequest is the body of POST /orders/assign.
type AssignOrdersRequest struct {
	CourierID int64 `json:"courier_id"`
}

// AssignOrdersResponse reports the courier's current assignment run.
// AssignTime is omitted when nothing is assigned.
type AssignOrdersResponse struct {
	Orders     []IDItem `json:"orders"`
	AssignTime string   `json:"assign_time,omitempty"`
}

// CompleteOrderRequest is the body of POST /orders/complete.
type CompleteOrderRequest struct {
	CourierID    int64  `json:"courier_id"`
	OrderID      int64  `json:"order_id"`
	CompleteTime string `json:"complete_time"`
}

// CompleteOrderResponse confirms a completed delivery.
type CompleteOrderResponse struct {
	OrderID int64 `json:"order_id"`
}
