// Package docs Codementee API.
//
// Documentation of Codementee API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//     Host: https://api.codementee.com
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/codementee/codementee-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/mentee/slots slots availableSlots
// Lists the time slots currently open for booking.
// responses:
//   200: availableSlotsResponse

// Shows every available time slot in the pool.
// swagger:response availableSlotsResponse
type availableSlotsResponseWrapper struct {
	// in:body
	Body []models.TimeSlot
}

// swagger:route POST /api/v1/mentee/booking-request booking submitBookingRequest
// Submits a booking request with up to two preferred slots.
// responses:
//   201: bookingRequestResponse

// Shows the pending booking request as recorded in the ledger.
// swagger:response bookingRequestResponse
type bookingRequestResponseWrapper struct {
	// in:body
	Body models.BookingRequest
}

// swagger:route GET /api/v1/admin/meet-links meetlinks meetLinks
// Lists the meet link pool with each link's claim state.
// responses:
//   200: meetLinksResponse

// Shows every meet link in the pool.
// swagger:response meetLinksResponse
type meetLinksResponseWrapper struct {
	// in:body
	Body []models.MeetLink
}

// swagger:route GET /api/v1/mocks mocks mockInterviews
// Lists mock interviews scoped to the caller.
// responses:
//   200: mockInterviewsResponse

// Shows the caller's mock interviews.
// swagger:response mockInterviewsResponse
type mockInterviewsResponseWrapper struct {
	// in:body
	Body []models.MockInterview
}

// Error message response with details of what went wrong
// swagger:response errorMessageResponse
type errorMessageResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
