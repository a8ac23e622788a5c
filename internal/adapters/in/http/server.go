// Package http exposes the fulfillment use cases over a REST API built on
// Echo. Request and response shapes live here; the core never sees them.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/commands"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/queries"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createParcelHandler  commands.CreateParcelCommandHandler
	updateStatusHandler  commands.UpdateParcelStatusCommandHandler
	assignCourierHandler commands.AssignCourierCommandHandler
	generateTokenHandler commands.GenerateQRTokenCommandHandler
	redeemTokenHandler   commands.RedeemQRTokenCommandHandler
	logLocationHandler   commands.LogCourierLocationCommandHandler
	deleteParcelHandler  commands.DeleteParcelCommandHandler

	trackParcelHandler    queries.TrackParcelQueryHandler
	lastLocationHandler   queries.GetCourierLastLocationQueryHandler
	getAllCouriersHandler queries.GetAllCouriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	updateStatusHandler commands.UpdateParcelStatusCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	generateTokenHandler commands.GenerateQRTokenCommandHandler,
	redeemTokenHandler commands.RedeemQRTokenCommandHandler,
	logLocationHandler commands.LogCourierLocationCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	lastLocationHandler queries.GetCourierLastLocationQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:   createParcelHandler,
		updateStatusHandler:   updateStatusHandler,
		assignCourierHandler:  assignCourierHandler,
		generateTokenHandler:  generateTokenHandler,
		redeemTokenHandler:    redeemTokenHandler,
		logLocationHandler:    logLocationHandler,
		deleteParcelHandler:   deleteParcelHandler,
		trackParcelHandler:    trackParcelHandler,
		lastLocationHandler:   lastLocationHandler,
		getAllCouriersHandler: getAllCouriersHandler,
	}
}

// RegisterRoutes mounts every endpoint on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.DELETE("/parcels/:id", s.DeleteParcel)
	api.PATCH("/parcels/:id/status", s.UpdateParcelStatus)
	api.POST("/parcels/:id/assign", s.AssignCourier)
	api.POST("/parcels/:id/qr-token", s.GenerateQRToken)
	api.POST("/tokens/redeem", s.RedeemQRToken)
	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers/:id/location", s.LogCourierLocation)
	api.GET("/couriers/:id/location", s.GetCourierLastLocation)
	api.GET("/tracking/:trackingNumber", s.TrackParcel)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrTokenExpired):
		status = http.StatusGone
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func parseID(raw string) (kernel.UUID, error) {
	return kernel.UUIDFromString(raw)
}

// CreateParcelRequest is the body of POST /api/v1/parcels.
type CreateParcelRequest struct {
	OrderID       string `json:"order_id"`
	RecipientName string `json:"recipient_name"`
	City          string `json:"city"`
	District      string `json:"district"`
	Street        string `json:"street"`
	ZipCode       string `json:"zip_code"`
}

// CreateParcelResponse carries the public tracking number of a new parcel.
type CreateParcelResponse struct {
	ParcelID       string `json:"parcel_id"`
	TrackingNumber string `json:"tracking_number"`
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	orderID, err := parseID(req.OrderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	address, err := parcel.NewAddress(req.RecipientName, req.City, req.District, req.Street, req.ZipCode)
	if err != nil {
		return errorJSON(ctx, err)
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, orderID, address)
	if err != nil {
		return errorJSON(ctx, err)
	}

	trackingNumber, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		ParcelID:       parcelID.String(),
		TrackingNumber: trackingNumber,
	})
}

// DeleteParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := parseID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatusRequest is the body of PATCH /api/v1/parcels/:id/status.
type UpdateParcelStatusRequest struct {
	Status      string   `json:"status"`
	Location    string   `json:"location,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Description string   `json:"description,omitempty"`
	ActorID     string   `json:"actor_id,omitempty"`
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/:id/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := parseID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req UpdateParcelStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	target, err := parcel.ParseStatus(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, target)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if req.Location != "" {
		cmd.WithLocation(req.Location)
	}
	if req.Description != "" {
		cmd.WithDescription(req.Description)
	}
	if req.Lat != nil && req.Lng != nil {
		point, pointErr := kernel.NewGeoPoint(*req.Lat, *req.Lng)
		if pointErr != nil {
			return errorJSON(ctx, pointErr)
		}
		cmd.WithPoint(point)
	}
	if req.ActorID != "" {
		actorID, actorErr := parseID(req.ActorID)
		if actorErr != nil {
			return errorJSON(ctx, actorErr)
		}
		cmd.WithActor(actorID)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignCourierRequest is the body of POST /api/v1/parcels/:id/assign.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// AssignCourier handles POST /api/v1/parcels/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	parcelID, err := parseID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	courierID, err := parseID(req.CourierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(parcelID, courierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// QRTokenResponse carries a freshly issued delivery token.
type QRTokenResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GenerateQRToken handles POST /api/v1/parcels/:id/qr-token.
func (s *Server) GenerateQRToken(ctx echo.Context) error {
	parcelID, err := parseID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewGenerateQRTokenCommand(parcelID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	issued, err := s.generateTokenHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, QRTokenResponse{
		Code:      issued.Code(),
		ExpiresAt: issued.ExpiresAt(),
	})
}

// RedeemQRTokenRequest is the body of POST /api/v1/tokens/redeem.
type RedeemQRTokenRequest struct {
	Code      string `json:"code"`
	CourierID string `json:"courier_id,omitempty"`
}

// RedeemQRToken handles POST /api/v1/tokens/redeem.
func (s *Server) RedeemQRToken(ctx echo.Context) error {
	var req RedeemQRTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRedeemQRTokenCommand(req.Code)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if req.CourierID != "" {
		courierID, courierErr := parseID(req.CourierID)
		if courierErr != nil {
			return errorJSON(ctx, courierErr)
		}
		cmd.WithCourier(courierID)
	}

	if err = s.redeemTokenHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CourierResponse is one roster entry of GET /api/v1/couriers.
type CourierResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.getAllCouriersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, entry := range couriers {
		response[i] = CourierResponse{
			ID:     entry.ID.String(),
			Name:   entry.Name,
			Active: entry.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// LogLocationRequest is the body of POST /api/v1/couriers/:id/location.
type LogLocationRequest struct {
	ParcelID   string   `json:"parcel_id"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Accuracy   *float64 `json:"accuracy,omitempty"`
	Address    string   `json:"address,omitempty"`
	City       string   `json:"city,omitempty"`
	DeviceInfo string   `json:"device_info,omitempty"`
}

// LogCourierLocation handles POST /api/v1/couriers/:id/location.
func (s *Server) LogCourierLocation(ctx echo.Context) error {
	courierID, err := parseID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req LogLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	parcelID, err := parseID(req.ParcelID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewLogCourierLocationCommand(parcelID, courierID, req.Lat, req.Lng)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if req.Accuracy != nil {
		cmd.WithAccuracy(*req.Accuracy)
	}
	if req.Address != "" {
		cmd.WithAddress(req.Address)
	}
	if req.City != "" {
		cmd.WithCity(req.City)
	}
	if req.DeviceInfo != "" {
		cmd.WithDeviceInfo(req.DeviceInfo)
	}

	if err = s.logLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// LastLocationResponse is the body of GET /api/v1/couriers/:id/location.
type LastLocationResponse struct {
	CourierID  string    `json:"courier_id"`
	ParcelID   string    `json:"parcel_id,omitempty"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	DeviceInfo string    `json:"device_info,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// GetCourierLastLocation handles GET /api/v1/couriers/:id/location.
func (s *Server) GetCourierLastLocation(ctx echo.Context) error {
	courierID, err := parseID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetCourierLastLocationQuery(courierID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if raw := ctx.QueryParam("parcel_id"); raw != "" {
		parcelID, parcelErr := parseID(raw)
		if parcelErr != nil {
			return errorJSON(ctx, parcelErr)
		}
		query.WithParcel(parcelID)
	}

	last, err := s.lastLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := LastLocationResponse{
		CourierID:  last.CourierID.String(),
		Lat:        last.Point.Lat(),
		Lng:        last.Point.Lng(),
		Accuracy:   last.Accuracy,
		RecordedAt: last.RecordedAt,
	}
	if last.ParcelID != nil {
		response.ParcelID = last.ParcelID.String()
	}
	if last.Address != nil {
		response.Address = *last.Address
	}
	if last.City != nil {
		response.City = *last.City
	}
	if last.DeviceInfo != nil {
		response.DeviceInfo = *last.DeviceInfo
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackingEventResponse is one entry of the public tracking feed.
type TrackingEventResponse struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// TrackingResponse is the body of GET /api/v1/tracking/:trackingNumber.
type TrackingResponse struct {
	TrackingNumber    string                  `json:"tracking_number"`
	Status            string                  `json:"status"`
	OrderStatus       string                  `json:"order_status"`
	RecipientName     string                  `json:"recipient_name"`
	DestinationCity   string                  `json:"destination_city"`
	RouteCities       []string                `json:"route_cities,omitempty"`
	CurrentCity       string                  `json:"current_city,omitempty"`
	EstimatedDelivery *time.Time              `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time              `json:"actual_delivery,omitempty"`
	Events            []TrackingEventResponse `json:"events"`
}

// TrackParcel handles GET /api/v1/tracking/:trackingNumber. This endpoint is
// public: the recipient name arrives masked.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	snapshot, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	events := make([]TrackingEventResponse, len(snapshot.Events))
	for i, event := range snapshot.Events {
		events[i] = TrackingEventResponse{
			Type:        event.Type,
			Description: event.Description,
			Location:    event.Location,
			OccurredAt:  event.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackingNumber:    snapshot.TrackingNumber,
		Status:            snapshot.Status,
		OrderStatus:       snapshot.OrderStatus,
		RecipientName:     snapshot.RecipientName,
		DestinationCity:   snapshot.DestinationCity,
		RouteCities:       snapshot.RouteCities,
		CurrentCity:       snapshot.CurrentCity,
		EstimatedDelivery: snapshot.EstimatedDelivery,
		ActualDelivery:    snapshot.ActualDelivery,
		Events:            events,
	})
}
