package http

import (
	"context"
	"log/slog"
	"net/http"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Use case ports consumed by the HTTP adapter.
type (
	SendParcelHandler interface {
		Handle(ctx context.Context, command commands.SendParcelCommand) (commands.SendParcelResult, error)
	}

	ReceiveParcelHandler interface {
		Handle(ctx context.Context, command commands.ReceiveParcelCommand) (commands.ReceiveParcelResult, error)
	}

	AddSiteHandler interface {
		Handle(ctx context.Context, command commands.AddSiteCommand) (kernel.ID, error)
	}

	AddCompartmentHandler interface {
		Handle(ctx context.Context, command commands.AddCompartmentCommand) (kernel.ID, error)
	}

	NearestSitesHandler interface {
		Handle(ctx context.Context, query queries.NearestSitesQuery) ([]queries.NearestSite, error)
	}

	ClientLocationHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetClientLocationQuery,
		) (queries.GetClientLocationQueryResponse, error)
	}
)

// Server handles the REST endpoints described by openapi.yaml.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	sendParcelHandler     SendParcelHandler
	receiveParcelHandler  ReceiveParcelHandler
	addSiteHandler        AddSiteHandler
	addCompartmentHandler AddCompartmentHandler

	// Query handlers
	nearestSitesHandler   NearestSitesHandler
	clientLocationHandler ClientLocationHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	sendParcelHandler SendParcelHandler,
	receiveParcelHandler ReceiveParcelHandler,
	addSiteHandler AddSiteHandler,
	addCompartmentHandler AddCompartmentHandler,
	nearestSitesHandler NearestSitesHandler,
	clientLocationHandler ClientLocationHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		sendParcelHandler:     sendParcelHandler,
		receiveParcelHandler:  receiveParcelHandler,
		addSiteHandler:        addSiteHandler,
		addCompartmentHandler: addCompartmentHandler,
		nearestSitesHandler:   nearestSitesHandler,
		clientLocationHandler: clientLocationHandler,
		logger:                logger.With("component", "http"),
	}
}

// GetClientLocation handles GET /api/v1/clients/{clientId}/location.
func (s *Server) GetClientLocation(ctx echo.Context) error {
	clientID, err := pathID(ctx, "clientId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetClientLocationQuery(clientID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	location, err := s.clientLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClientLocation{
		ClientID: location.ClientID.Int64(),
		Location: toLocation(location.Location),
	})
}

// GetNearestParcelLockers handles GET /api/v1/clients/{clientId}/parcel-lockers.
func (s *Server) GetNearestParcelLockers(ctx echo.Context) error {
	clientID, err := pathID(ctx, "clientId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var maxDistance float64
	if err = runtime.BindQueryParameter("form", true, true, "max_distance", ctx.QueryParams(), &maxDistance); err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewNearestSitesQuery(clientID, maxDistance)
	if err != nil {
		return s.writeError(ctx, err)
	}

	sites, err := s.nearestSitesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := NearestParcelLockers{ParcelLockers: make([]NearestParcelLocker, len(sites))}
	for i, site := range sites {
		response.ParcelLockers[i] = NearestParcelLocker{
			ID:         site.SiteID.Int64(),
			City:       site.City,
			PostalCode: site.PostalCode,
			Location:   toLocation(site.Location),
			DistanceKm: site.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SendPackage handles POST /api/v1/packages.
func (s *Server) SendPackage(ctx echo.Context) error {
	var request SendPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSendParcelCommand(request.SenderID, request.ReceiverID, request.MaxDistance, request.Size)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.sendParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SendPackageResponse{Package: SentPackage{
		ID:             result.ParcelID.Int64(),
		ParcelLockerID: result.SiteID.Int64(),
		CompartmentID:  result.CompartmentID.Int64(),
		Status:         result.Status.String(),
		CreatedAt:      result.CreatedAt,
	}})
}

// ReceivePackage handles PUT /api/v1/packages/{packageId}.
func (s *Server) ReceivePackage(ctx echo.Context) error {
	packageID, err := pathID(ctx, "packageId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReceiveParcelCommand(packageID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.receiveParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReceivePackageResponse{Package: ReceivedPackage{
		ID:          result.ParcelID.Int64(),
		Status:      result.Status.String(),
		DeliveredAt: result.DeliveredAt,
	}})
}

// AddParcelLocker handles POST /api/v1/parcel-lockers.
func (s *Server) AddParcelLocker(ctx echo.Context) error {
	var request AddParcelLockerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddSiteCommand(request.City, request.PostalCode, request.Latitude, request.Longitude)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id, err := s.addSiteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddParcelLockerResponse{NewParcelLockerID: id.Int64()})
}

// AddCompartment handles POST /api/v1/parcel-lockers/{siteId}/compartments.
func (s *Server) AddCompartment(ctx echo.Context) error {
	siteID, err := pathID(ctx, "siteId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request AddCompartmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddCompartmentCommand(siteID, request.Size)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id, err := s.addCompartmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddCompartmentResponse{NewCompartmentID: id.Int64()})
}

func pathID(ctx echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}

func toLocation(p kernel.GeoPoint) Location {
	return Location{Latitude: p.Latitude(), Longitude: p.Longitude()}
}
