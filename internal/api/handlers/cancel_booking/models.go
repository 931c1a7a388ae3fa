package cancel_booking

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
